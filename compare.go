package erltf

import "reflect"

// termEqual reports whether two decoded/host term values are equal for the
// purposes of map-key deduplication. ETF map keys may be tuples, lists, or
// nested maps, none of which are comparable with Go's == operator, so this
// falls back to structural equality.
func termEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
