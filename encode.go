package erltf

import (
	"math"
	"math/big"
	"reflect"
)

// MaxTermDepth bounds encoder/decoder recursion so adversarial or
// accidentally cyclic input cannot exhaust the stack. It is a package var,
// not a constant, so embedders can raise or lower it, the same way
// DefaultBufferSize is tunable.
var MaxTermDepth = 512

// Precomputed encodings of the three sentinel atoms. All three use the
// legacy SMALL_ATOM_EXT tag even though their payload is ASCII/UTF-8
// (`nil` encodes to `83 73 03 6E 69 6C`, tag 0x73 = SMALL_ATOM_EXT), not
// the ATOM_UTF8_EXT family. Precomputed once rather than built per call.
var (
	nilAtomBytes   = []byte{byte(SmallAtomExt), 3, 'n', 'i', 'l'}
	trueAtomBytes  = []byte{byte(SmallAtomExt), 4, 't', 'r', 'u', 'e'}
	falseAtomBytes = []byte{byte(SmallAtomExt), 5, 'f', 'a', 'l', 's', 'e'}
)

var (
	bigMinInt32 = big.NewInt(math.MinInt32)
	bigMaxInt32 = big.NewInt(math.MaxInt32)
	big255      = big.NewInt(255)
)

// Pack encodes value as a single versioned ETF term. One call encodes
// exactly one term; see [PackAll] for bundling several values.
func Pack(value any, opts PackOptions) ([]byte, error) {
	w := newWriter()
	if err := w.WriteU8(TermFormatVersion); err != nil {
		return nil, wrapEncodeError(ErrUnsupportedValue, "writing version prefix", err)
	}
	if err := encodeTerm(w, value, opts, 0); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func encodeTerm(w *writer, v any, opts PackOptions, depth int) error {
	if depth > MaxTermDepth {
		return newEncodeError(ErrDepthExceeded, "recursion depth exceeded")
	}

	switch t := v.(type) {
	case nil:
		return w.WriteBytes(nilAtomBytes)
	case bool:
		if t {
			return w.WriteBytes(trueAtomBytes)
		}
		return w.WriteBytes(falseAtomBytes)
	case Atom:
		return encodeAtom(w, string(t))
	case []byte:
		return encodeBinary(w, t)
	case string:
		return encodeText(w, t, opts)
	case float32:
		return encodeFloat(w, float64(t))
	case float64:
		return encodeFloat(w, t)
	case *big.Int:
		return encodeInteger(w, t, opts)
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return encodeInteger(w, toBigInt(t), opts)
	case Set:
		return encodeSequence(w, []any(t), opts, depth)
	case Tuple:
		return encodeTuple(w, []any(t), opts, depth)
	case List:
		return encodeSequence(w, []any(t), opts, depth)
	case Map:
		return encodeMap(w, t, opts, depth)
	}

	// Fall back to reflection for slices/maps the caller built without our
	// wrapper types (e.g. []any, []string, map[string]int).
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		elems := make([]any, rv.Len())
		for i := range elems {
			elems[i] = rv.Index(i).Interface()
		}
		return encodeSequence(w, elems, opts, depth)
	case reflect.Map:
		m := Map{Pairs: make([]MapPair, 0, rv.Len())}
		iter := rv.MapRange()
		for iter.Next() {
			m.Pairs = append(m.Pairs, MapPair{Key: iter.Key().Interface(), Value: iter.Value().Interface()})
		}
		return encodeMap(w, m, opts, depth)
	case reflect.Chan, reflect.Func, reflect.Complex64, reflect.Complex128,
		reflect.Interface, reflect.Uintptr, reflect.UnsafePointer, reflect.Invalid:
		return newEncodeError(ErrUnsupportedValue, "kind "+rv.Kind().String())
	default:
		return newEncodeError(ErrUnsupportedValue, "type "+rv.Type().String())
	}
}

func toBigInt(v any) *big.Int {
	switch t := v.(type) {
	case int:
		return big.NewInt(int64(t))
	case int8:
		return big.NewInt(int64(t))
	case int16:
		return big.NewInt(int64(t))
	case int32:
		return big.NewInt(int64(t))
	case int64:
		return big.NewInt(t)
	case uint:
		return new(big.Int).SetUint64(uint64(t))
	case uint8:
		return new(big.Int).SetUint64(uint64(t))
	case uint16:
		return new(big.Int).SetUint64(uint64(t))
	case uint32:
		return new(big.Int).SetUint64(uint64(t))
	case uint64:
		return new(big.Int).SetUint64(t)
	default:
		return nil
	}
}

// encodeInteger chooses the integer tag based purely on the numeric
// magnitude of n, never on its Go source type.
func encodeInteger(w *writer, n *big.Int, opts PackOptions) error {
	if n == nil {
		return newEncodeError(ErrUnsupportedValue, "integer value")
	}

	if n.Sign() >= 0 && n.Cmp(big255) <= 0 {
		if err := w.WriteU8(byte(SmallIntegerExt)); err != nil {
			return wrapEncodeError(ErrUnsupportedValue, "writing SMALL_INTEGER_EXT tag", err)
		}
		return w.WriteU8(byte(n.Int64()))
	}

	if n.Cmp(bigMinInt32) >= 0 && n.Cmp(bigMaxInt32) <= 0 {
		if err := w.WriteU8(byte(IntegerExt)); err != nil {
			return wrapEncodeError(ErrUnsupportedValue, "writing INTEGER_EXT tag", err)
		}
		return w.WriteU32BE(uint32(int32(n.Int64())))
	}

	sign := byte(0)
	magnitude := n
	if n.Sign() < 0 {
		sign = 1
		magnitude = new(big.Int).Neg(n)
	}

	bytesBE := magnitude.Bytes() // big-endian, as produced by math/big
	ceiling := opts.bigIntCeiling()
	if len(bytesBE) > ceiling {
		return newEncodeError(ErrIntegerOutOfRange, "magnitude exceeds big-integer ceiling")
	}

	reverseBytes(bytesBE) // SMALL_BIG_EXT magnitude is little-endian

	if err := w.WriteU8(byte(SmallBigExt)); err != nil {
		return wrapEncodeError(ErrIntegerOutOfRange, "writing SMALL_BIG_EXT tag", err)
	}
	if err := w.WriteU8(byte(len(bytesBE))); err != nil {
		return wrapEncodeError(ErrIntegerOutOfRange, "writing SMALL_BIG_EXT length", err)
	}
	if err := w.WriteU8(sign); err != nil {
		return wrapEncodeError(ErrIntegerOutOfRange, "writing SMALL_BIG_EXT sign", err)
	}
	return w.WriteBytes(bytesBE)
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

func encodeFloat(w *writer, v float64) error {
	if err := w.WriteU8(byte(NewFloatExt)); err != nil {
		return wrapEncodeError(ErrUnsupportedValue, "writing FLOAT_IEEE_EXT tag", err)
	}
	return w.WriteF64BE(v)
}

func encodeText(w *writer, s string, opts PackOptions) error {
	b, err := encodeToCodec(s, opts.stringEncoding())
	if err != nil {
		return wrapEncodeError(ErrTextEncodeFailed, "encoding "+opts.stringEncoding(), err)
	}

	switch opts.UnicodeMode {
	case ENCODE_AS_ATOM:
		return encodeAtomBytes(w, b)
	case ENCODE_AS_STR:
		if len(b) > math.MaxUint16 {
			return newEncodeError(ErrStringTooLarge, "string exceeds 65535 bytes")
		}
		if err := w.WriteU8(byte(StringExt)); err != nil {
			return wrapEncodeError(ErrStringTooLarge, "writing STRING_EXT tag", err)
		}
		if err := w.WriteU16BE(uint16(len(b))); err != nil {
			return wrapEncodeError(ErrStringTooLarge, "writing STRING_EXT length", err)
		}
		return w.WriteBytes(b)
	default: // ENCODE_AS_BYTES
		return encodeBinary(w, b)
	}
}

func encodeBinary(w *writer, b []byte) error {
	if len(b) > math.MaxInt32 {
		return newEncodeError(ErrBinaryTooLarge, "binary exceeds 2^31-1 bytes")
	}
	if err := w.WriteU8(byte(BinaryExt)); err != nil {
		return wrapEncodeError(ErrBinaryTooLarge, "writing BINARY_EXT tag", err)
	}
	if err := w.WriteU32BE(uint32(len(b))); err != nil {
		return wrapEncodeError(ErrBinaryTooLarge, "writing BINARY_EXT length", err)
	}
	return w.WriteBytes(b)
}

func encodeAtom(w *writer, s string) error {
	b, err := encodeToCodec(s, defaultStringEncoding)
	if err != nil {
		return wrapEncodeError(ErrTextEncodeFailed, "encoding atom", err)
	}
	return encodeAtomBytes(w, b)
}

func encodeAtomBytes(w *writer, b []byte) error {
	if len(b) > math.MaxUint16 {
		return newEncodeError(ErrAtomTooLarge, "atom exceeds 65535 bytes")
	}
	if len(b) <= 254 {
		if err := w.WriteU8(byte(SmallAtomExt)); err != nil {
			return wrapEncodeError(ErrAtomTooLarge, "writing SMALL_ATOM_EXT tag", err)
		}
		if err := w.WriteU8(byte(len(b))); err != nil {
			return wrapEncodeError(ErrAtomTooLarge, "writing SMALL_ATOM_EXT length", err)
		}
		return w.WriteBytes(b)
	}
	if err := w.WriteU8(byte(AtomExt)); err != nil {
		return wrapEncodeError(ErrAtomTooLarge, "writing ATOM_EXT tag", err)
	}
	if err := w.WriteU16BE(uint16(len(b))); err != nil {
		return wrapEncodeError(ErrAtomTooLarge, "writing ATOM_EXT length", err)
	}
	return w.WriteBytes(b)
}

func encodeTuple(w *writer, elems []any, opts PackOptions, depth int) error {
	n := len(elems)
	switch {
	case n <= math.MaxUint8:
		if err := w.WriteU8(byte(SmallTupleExt)); err != nil {
			return wrapEncodeError(ErrTooManyElements, "writing SMALL_TUPLE_EXT tag", err)
		}
		if err := w.WriteU8(byte(n)); err != nil {
			return wrapEncodeError(ErrTooManyElements, "writing SMALL_TUPLE_EXT arity", err)
		}
	case uint64(n) <= math.MaxUint32:
		if err := w.WriteU8(byte(LargeTupleExt)); err != nil {
			return wrapEncodeError(ErrTooManyElements, "writing LARGE_TUPLE_EXT tag", err)
		}
		if err := w.WriteU32BE(uint32(n)); err != nil {
			return wrapEncodeError(ErrTooManyElements, "writing LARGE_TUPLE_EXT arity", err)
		}
	default:
		return newEncodeError(ErrTooManyElements, "tuple arity exceeds 2^32-1")
	}
	for _, elem := range elems {
		if err := encodeTerm(w, elem, opts, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// encodeSequence encodes a list, and doubles for sets (encoded as lists of
// their elements). Used for List, Set, and reflect-discovered
// slices/arrays alike, since all three erase to the same LIST_EXT/NIL_EXT
// wire shape.
func encodeSequence(w *writer, elems []any, opts PackOptions, depth int) error {
	n := len(elems)
	if n == 0 {
		return w.WriteU8(byte(NilExt))
	}
	if uint64(n) > math.MaxUint32 {
		return newEncodeError(ErrTooManyElements, "list length exceeds 2^32-1")
	}
	if err := w.WriteU8(byte(ListExt)); err != nil {
		return wrapEncodeError(ErrTooManyElements, "writing LIST_EXT tag", err)
	}
	if err := w.WriteU32BE(uint32(n)); err != nil {
		return wrapEncodeError(ErrTooManyElements, "writing LIST_EXT count", err)
	}
	for _, elem := range elems {
		if err := encodeTerm(w, elem, opts, depth+1); err != nil {
			return err
		}
	}
	return w.WriteU8(byte(NilExt))
}

func encodeMap(w *writer, m Map, opts PackOptions, depth int) error {
	n := len(m.Pairs)
	if uint64(n) > math.MaxUint32 {
		return newEncodeError(ErrTooManyElements, "map size exceeds 2^32-1")
	}
	if err := w.WriteU8(byte(MapExt)); err != nil {
		return wrapEncodeError(ErrTooManyElements, "writing MAP_EXT tag", err)
	}
	if err := w.WriteU32BE(uint32(n)); err != nil {
		return wrapEncodeError(ErrTooManyElements, "writing MAP_EXT count", err)
	}
	for _, pair := range m.Pairs {
		if err := encodeTerm(w, pair.Key, opts, depth+1); err != nil {
			return err
		}
		if err := encodeTerm(w, pair.Value, opts, depth+1); err != nil {
			return err
		}
	}
	return nil
}
