// Package erltf implements the ETF encoding and decoding format, the implemented version can be
// located at [TermFormatVersion].
package erltf

// TermFormatVersion is the ETF version this package implements.
const TermFormatVersion byte = 131

// TermIdentifier is used for identifying the data type of a payload.
type TermIdentifier byte

const (
	NewFloatExt TermIdentifier = iota + 70
	_
	_
	_
	_
	_
	_
	BitBinaryExt
	_
	_
	_
	_
	AtomCacheRef
	_
	_
	_
	_
	_
	_
	_
	_
	_
	_
	_
	_
	_
	_
	SmallIntegerExt
	IntegerExt
	FloatExt
	AtomExt
	_ // ReferenceExt
	_ // PortExt
	_ // PidExt
	SmallTupleExt
	LargeTupleExt
	NilExt
	StringExt
	ListExt
	BinaryExt
	SmallBigExt
	LargeBigExt
	_ // NewFunExt
	_ // ExportExt
	_ // NewReferenceExt
	SmallAtomExt
	MapExt
	_ // FunExt
	AtomUTF8Ext
	SmallAtomUTF8Ext
)

// CompressedTermExt is the envelope tag ('P', 80) whose payload is a 4-byte big-endian
// inflated length followed by a zlib stream. It is declared on its own rather than in the
// iota run above, where its value falls in one of the unnamed slots between BitBinaryExt
// and AtomCacheRef.
const CompressedTermExt TermIdentifier = 80

// String returns the human-readable name of a tag, mainly for error messages.
func (t TermIdentifier) String() string {
	switch t {
	case NewFloatExt:
		return "NEW_FLOAT_EXT"
	case BitBinaryExt:
		return "BIT_BINARY_EXT"
	case AtomCacheRef:
		return "ATOM_CACHE_REF"
	case SmallIntegerExt:
		return "SMALL_INTEGER_EXT"
	case IntegerExt:
		return "INTEGER_EXT"
	case FloatExt:
		return "FLOAT_EXT"
	case AtomExt:
		return "ATOM_EXT"
	case SmallAtomExt:
		return "SMALL_ATOM_EXT"
	case SmallTupleExt:
		return "SMALL_TUPLE_EXT"
	case LargeTupleExt:
		return "LARGE_TUPLE_EXT"
	case NilExt:
		return "NIL_EXT"
	case StringExt:
		return "STRING_EXT"
	case ListExt:
		return "LIST_EXT"
	case BinaryExt:
		return "BINARY_EXT"
	case SmallBigExt:
		return "SMALL_BIG_EXT"
	case LargeBigExt:
		return "LARGE_BIG_EXT"
	case MapExt:
		return "MAP_EXT"
	case AtomUTF8Ext:
		return "ATOM_UTF8_EXT"
	case SmallAtomUTF8Ext:
		return "SMALL_ATOM_UTF8_EXT"
	case CompressedTermExt:
		return "COMPRESSED_TERM"
	default:
		return "UNKNOWN_EXT"
	}
}
