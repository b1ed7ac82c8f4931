package erltf

// Atom represents an ETF atom explicitly. Encoding a Go string uses
// [PackOptions.UnicodeMode] to decide which container tag carries it;
// encoding an Atom always produces SMALL_ATOM_EXT/ATOM_EXT regardless of
// that option, matching spec §8.2 scenario S10. Decoding any atom tag
// (legacy or UTF-8) other than the three reserved sentinels ("nil",
// "true", "false") yields an Atom.
type Atom string

// Set represents a host set (spec §6.2). ETF has no native set tag; a Set
// is encoded exactly like a [List] or bare []any — "sets are encoded as
// lists of their elements" (spec §4.2) — and decoding never reconstructs
// a Set, since the wire format cannot distinguish it from a list (spec
// §1's non-goal: "preserving source-value identity across a round trip
// for types that have no ETF counterpart").
type Set []any

// Tuple represents a fixed-arity ordered sequence of terms
// (SMALL_TUPLE_EXT/LARGE_TUPLE_EXT per spec §4.2 rule 7).
type Tuple []any

// List represents a non-empty ordered sequence of terms
// (LIST_EXT per spec §4.2 rule 8). An empty Go slice or nil of type List
// still encodes as NIL_EXT, same as an empty []any; List exists so callers
// can force list framing for a single element without reaching for []any.
type List []any

// MapPair is one key/value entry of a [Map], preserving the host mapping
// iterator's order (spec §4.2 rule 9: "the format does not require a
// canonical order").
type MapPair struct {
	Key   any
	Value any
}

// Map represents an ETF MAP_EXT: an ordered sequence of key/value pairs.
// Keys are not required to be unique by the wire format (spec §3.1); on
// decode, a duplicate key overwrites the earlier value per spec §4.3.6,
// using [reflect.DeepEqual] for comparison since ETF map keys (tuples,
// lists, nested maps) are not necessarily comparable by Go's == operator.
type Map struct {
	Pairs []MapPair
}

// Set inserts key, or overwrites its value if already present, and returns
// the updated Map. The result shares its Pairs backing array with m, so an
// overwrite is also visible through m. Present for
// symmetry with the host value model's "mapping with set-item" contract
// (spec §6.2); the core decoder builds Maps without it for performance
// (see decodeMap in decode.go).
func (m Map) Set(key, value any) Map {
	for i := range m.Pairs {
		if termEqual(m.Pairs[i].Key, key) {
			m.Pairs[i].Value = value
			return m
		}
	}
	m.Pairs = append(m.Pairs, MapPair{Key: key, Value: value})
	return m
}

// Get returns the value associated with key and whether it was found.
func (m Map) Get(key any) (any, bool) {
	for _, pair := range m.Pairs {
		if termEqual(pair.Key, key) {
			return pair.Value, true
		}
	}
	return nil, false
}
