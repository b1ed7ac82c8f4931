package erltf

import "testing"

func TestTagByteValuesMatchWireFormat(t *testing.T) {
	cases := []struct {
		name string
		tag  TermIdentifier
		want byte
	}{
		{"SMALL_INTEGER_EXT", SmallIntegerExt, 0x61},
		{"INTEGER_EXT", IntegerExt, 0x62},
		{"FLOAT_EXT", FloatExt, 0x63},
		{"ATOM_EXT", AtomExt, 0x64},
		{"SMALL_TUPLE_EXT", SmallTupleExt, 0x68},
		{"LARGE_TUPLE_EXT", LargeTupleExt, 0x69},
		{"NIL_EXT", NilExt, 0x6A},
		{"STRING_EXT", StringExt, 0x6B},
		{"LIST_EXT", ListExt, 0x6C},
		{"BINARY_EXT", BinaryExt, 0x6D},
		{"SMALL_BIG_EXT", SmallBigExt, 0x6E},
		{"LARGE_BIG_EXT", LargeBigExt, 0x6F},
		{"SMALL_ATOM_EXT", SmallAtomExt, 0x73},
		{"MAP_EXT", MapExt, 0x74},
		{"ATOM_UTF8_EXT", AtomUTF8Ext, 0x76},
		{"SMALL_ATOM_UTF8_EXT", SmallAtomUTF8Ext, 0x77},
		{"FLOAT_IEEE_EXT", NewFloatExt, 0x46},
		{"BIT_BINARY_EXT", BitBinaryExt, 0x4D},
		{"COMPRESSED_TERM", CompressedTermExt, 0x50},
	}

	for _, tc := range cases {
		if byte(tc.tag) != tc.want {
			t.Errorf("%s: got 0x%02X, want 0x%02X", tc.name, byte(tc.tag), tc.want)
		}
	}
}

func TestTagStringNamesKnownTags(t *testing.T) {
	if got := SmallIntegerExt.String(); got != "SMALL_INTEGER_EXT" {
		t.Errorf("got %q", got)
	}
	if got := TermIdentifier(0xFF).String(); got != "UNKNOWN_EXT" {
		t.Errorf("got %q", got)
	}
}
