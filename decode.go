package erltf

import (
	"bytes"
	"math/big"
	"strconv"
)

// Unpack decodes a single versioned ETF term. One call decodes exactly one
// term; see [UnpackAll] for the multi-value convenience form.
func Unpack(data []byte, opts UnpackOptions) (any, error) {
	r := newReader(data)
	version, err := r.ReadU8()
	if err != nil {
		// No bytes to read at all is truncation (ErrUnexpectedEnd), not a bad
		// version (which means a version byte was present but wrong); err is
		// already a *DecodeError of the right kind, so propagate it as-is.
		return nil, err
	}
	if version != TermFormatVersion {
		return nil, newDecodeError(ErrBadVersion, 0, version, "expected version byte 0x83")
	}
	return decodeTerm(r, opts, 0)
}

func decodeTerm(r *reader, opts UnpackOptions, depth int) (any, error) {
	if depth > MaxTermDepth {
		return nil, newDecodeError(ErrDepthExceeded, r.Offset(), 0, "recursion depth exceeded")
	}

	tagOffset := r.Offset()
	tagByte, err := r.ReadU8()
	if err != nil {
		return nil, wrapDecodeError(ErrUnexpectedEnd, tagOffset, 0, "reading tag byte", err)
	}
	tag := TermIdentifier(tagByte)

	switch tag {
	case SmallIntegerExt:
		v, err := r.ReadU8()
		if err != nil {
			return nil, wrapDecodeError(ErrUnexpectedEnd, tagOffset, tagByte, "reading SMALL_INTEGER_EXT payload", err)
		}
		return int(v), nil

	case IntegerExt:
		raw, err := r.ReadU32BE()
		if err != nil {
			return nil, wrapDecodeError(ErrUnexpectedEnd, tagOffset, tagByte, "reading INTEGER_EXT payload", err)
		}
		return int(int32(raw)), nil

	case NewFloatExt:
		v, err := r.ReadF64BE()
		if err != nil {
			return nil, wrapDecodeError(ErrUnexpectedEnd, tagOffset, tagByte, "reading FLOAT_IEEE_EXT payload", err)
		}
		return v, nil

	case FloatExt:
		raw, err := r.Take(31)
		if err != nil {
			return nil, wrapDecodeError(ErrUnexpectedEnd, tagOffset, tagByte, "reading FLOAT_EXT payload", err)
		}
		text := string(bytes.TrimRight(raw, "\x00"))
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, wrapDecodeError(ErrTextDecodeFailed, tagOffset, tagByte, "parsing FLOAT_EXT decimal literal", err)
		}
		return v, nil

	case AtomExt, AtomUTF8Ext:
		ln, err := r.ReadU16BE()
		if err != nil {
			return nil, wrapDecodeError(ErrUnexpectedEnd, tagOffset, tagByte, "reading atom length", err)
		}
		return decodeAtomPayload(r, tagOffset, tagByte, int(ln))

	case SmallAtomExt, SmallAtomUTF8Ext:
		ln, err := r.ReadU8()
		if err != nil {
			return nil, wrapDecodeError(ErrUnexpectedEnd, tagOffset, tagByte, "reading atom length", err)
		}
		return decodeAtomPayload(r, tagOffset, tagByte, int(ln))

	case SmallTupleExt:
		arity, err := r.ReadU8()
		if err != nil {
			return nil, wrapDecodeError(ErrUnexpectedEnd, tagOffset, tagByte, "reading SMALL_TUPLE_EXT arity", err)
		}
		elems, err := decodeTermSequence(r, int(arity), opts, depth+1)
		if err != nil {
			return nil, err
		}
		return Tuple(elems), nil

	case LargeTupleExt:
		arity, err := r.ReadU32BE()
		if err != nil {
			return nil, wrapDecodeError(ErrUnexpectedEnd, tagOffset, tagByte, "reading LARGE_TUPLE_EXT arity", err)
		}
		elems, err := decodeTermSequence(r, int(arity), opts, depth+1)
		if err != nil {
			return nil, err
		}
		return Tuple(elems), nil

	case NilExt:
		return []any{}, nil

	case StringExt:
		ln, err := r.ReadU16BE()
		if err != nil {
			return nil, wrapDecodeError(ErrUnexpectedEnd, tagOffset, tagByte, "reading STRING_EXT length", err)
		}
		raw, err := r.Take(int(ln))
		if err != nil {
			return nil, wrapDecodeError(ErrUnexpectedEnd, tagOffset, tagByte, "reading STRING_EXT payload", err)
		}
		if opts.StringEncoding == "" {
			return append([]byte(nil), raw...), nil
		}
		text, err := decodeFromCodec(raw, opts.StringEncoding)
		if err != nil {
			return nil, wrapDecodeError(ErrTextDecodeFailed, tagOffset, tagByte, "decoding STRING_EXT text", err)
		}
		return text, nil

	case ListExt:
		count, err := r.ReadU32BE()
		if err != nil {
			return nil, wrapDecodeError(ErrUnexpectedEnd, tagOffset, tagByte, "reading LIST_EXT count", err)
		}
		elems, err := decodeTermSequence(r, int(count), opts, depth+1)
		if err != nil {
			return nil, err
		}
		tailOffset := r.Offset()
		tailByte, err := r.ReadU8()
		if err != nil {
			return nil, wrapDecodeError(ErrUnexpectedEnd, tailOffset, tagByte, "reading LIST_EXT tail", err)
		}
		if TermIdentifier(tailByte) != NilExt {
			return nil, newDecodeError(ErrMissingListTail, tailOffset, tailByte,
				"improper lists are not supported; expected NIL_EXT tail")
		}
		return elems, nil

	case BinaryExt:
		ln, err := r.ReadU32BE()
		if err != nil {
			return nil, wrapDecodeError(ErrUnexpectedEnd, tagOffset, tagByte, "reading BINARY_EXT length", err)
		}
		raw, err := r.Take(int(ln))
		if err != nil {
			return nil, wrapDecodeError(ErrUnexpectedEnd, tagOffset, tagByte, "reading BINARY_EXT payload", err)
		}
		if opts.DecodeBinaryAsText && opts.StringEncoding != "" {
			text, err := decodeFromCodec(raw, opts.StringEncoding)
			if err != nil {
				return nil, wrapDecodeError(ErrTextDecodeFailed, tagOffset, tagByte, "decoding BINARY_EXT text", err)
			}
			return text, nil
		}
		return append([]byte(nil), raw...), nil

	case SmallBigExt:
		ln, err := r.ReadU8()
		if err != nil {
			return nil, wrapDecodeError(ErrUnexpectedEnd, tagOffset, tagByte, "reading SMALL_BIG_EXT length", err)
		}
		return decodeBigInt(r, tagOffset, tagByte, int(ln), opts)

	case LargeBigExt:
		ln, err := r.ReadU32BE()
		if err != nil {
			return nil, wrapDecodeError(ErrUnexpectedEnd, tagOffset, tagByte, "reading LARGE_BIG_EXT length", err)
		}
		return decodeBigInt(r, tagOffset, tagByte, int(ln), opts)

	case MapExt:
		count, err := r.ReadU32BE()
		if err != nil {
			return nil, wrapDecodeError(ErrUnexpectedEnd, tagOffset, tagByte, "reading MAP_EXT count", err)
		}
		return decodeMap(r, int(count), opts, depth+1)

	case CompressedTermExt:
		return decodeCompressed(r, tagOffset, tagByte, opts, depth)

	default:
		return nil, newDecodeError(ErrUnknownTag, tagOffset, tagByte, "unrecognized term tag")
	}
}

func decodeAtomPayload(r *reader, tagOffset int, tagByte byte, length int) (any, error) {
	raw, err := r.Take(length)
	if err != nil {
		return nil, wrapDecodeError(ErrUnexpectedEnd, tagOffset, tagByte, "reading atom payload", err)
	}
	// Atom payloads are always interpreted as UTF-8 text regardless of the
	// caller's string_encoding option: that option only governs
	// STRING_EXT/BINARY_EXT.
	text, err := decodeFromCodec(raw, defaultStringEncoding)
	if err != nil {
		return nil, wrapDecodeError(ErrTextDecodeFailed, tagOffset, tagByte, "decoding atom text", err)
	}
	switch text {
	case "nil":
		return nil, nil
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return Atom(text), nil
	}
}

func decodeTermSequence(r *reader, count int, opts UnpackOptions, depth int) ([]any, error) {
	if count < 0 {
		return nil, newDecodeError(ErrUnexpectedEnd, r.Offset(), 0, "negative sequence count")
	}
	elems := make([]any, count)
	for i := 0; i < count; i++ {
		elem, err := decodeTerm(r, opts, depth)
		if err != nil {
			return nil, err
		}
		elems[i] = elem
	}
	return elems, nil
}

func decodeBigInt(r *reader, tagOffset int, tagByte byte, length int, opts UnpackOptions) (any, error) {
	ceiling := opts.bigIntCeiling()
	if length > ceiling {
		return nil, newDecodeError(ErrBigIntegerTooLarge, tagOffset, tagByte,
			"magnitude exceeds big-integer ceiling")
	}
	sign, err := r.ReadU8()
	if err != nil {
		return nil, wrapDecodeError(ErrUnexpectedEnd, tagOffset, tagByte, "reading big integer sign", err)
	}
	if sign != 0 && sign != 1 {
		return nil, newDecodeError(ErrMalformedBigInt, tagOffset, tagByte, "sign byte must be 0 or 1")
	}
	magnitude, err := r.Take(length)
	if err != nil {
		return nil, wrapDecodeError(ErrUnexpectedEnd, tagOffset, tagByte, "reading big integer magnitude", err)
	}
	// Wire magnitude is little-endian; math/big.Int.SetBytes expects
	// big-endian, so reverse a copy before handing it off.
	magnitudeBE := make([]byte, length)
	for i, b := range magnitude {
		magnitudeBE[length-1-i] = b
	}
	value := new(big.Int).SetBytes(magnitudeBE)
	if sign == 1 {
		value.Neg(value)
	}
	return value, nil
}

func decodeMap(r *reader, count int, opts UnpackOptions, depth int) (any, error) {
	if count < 0 {
		return nil, newDecodeError(ErrUnexpectedEnd, r.Offset(), 0, "negative map count")
	}
	m := Map{Pairs: make([]MapPair, 0, count)}
	for i := 0; i < count; i++ {
		key, err := decodeTerm(r, opts, depth)
		if err != nil {
			return nil, err
		}
		value, err := decodeTerm(r, opts, depth)
		if err != nil {
			return nil, err
		}
		// Duplicate keys overwrite earlier values.
		overwritten := false
		for i := range m.Pairs {
			if termEqual(m.Pairs[i].Key, key) {
				m.Pairs[i].Value = value
				overwritten = true
				break
			}
		}
		if !overwritten {
			m.Pairs = append(m.Pairs, MapPair{Key: key, Value: value})
		}
	}
	return m, nil
}
