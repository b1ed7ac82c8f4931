package erltf

// UnicodeMode selects which ETF container tag receives the bytes of a host
// text value during encoding.
type UnicodeMode int

const (
	// ENCODE_AS_BYTES emits host text as BINARY_EXT. This is the default.
	ENCODE_AS_BYTES UnicodeMode = iota
	// ENCODE_AS_STR emits host text as STRING_EXT.
	ENCODE_AS_STR
	// ENCODE_AS_ATOM emits host text as an atom
	// (SMALL_ATOM_EXT/ATOM_EXT).
	ENCODE_AS_ATOM
)

// defaultStringEncoding is used whenever PackOptions.StringEncoding or
// UnpackOptions.StringEncoding is left at its zero value.
const defaultStringEncoding = "utf-8"

// PackOptions configures [Pack]. The zero value is the documented default:
// string_encoding "utf-8", unicode_mode as_binary.
type PackOptions struct {
	// StringEncoding names the text codec used to turn a host string into
	// bytes before emission. Only "utf-8" (and the zero value, which means
	// "utf-8") are supported — see DESIGN.md for why no third-party
	// charset-conversion library is wired in here.
	StringEncoding string

	// UnicodeMode selects which tag receives host text.
	UnicodeMode UnicodeMode

	// WideBigInt raises the SMALL_BIG_EXT/LARGE_BIG_EXT magnitude ceiling
	// from 8 bytes to 255 bytes, ETF's true one-byte length-prefix ceiling.
	// Off by default, preserving the narrower 8-byte ceiling exactly.
	WideBigInt bool
}

func (o PackOptions) stringEncoding() string {
	if o.StringEncoding == "" {
		return defaultStringEncoding
	}
	return o.StringEncoding
}

// UnpackOptions configures [Unpack]. The zero value is the documented
// default: string_encoding absent, decode_binary_as_text false.
type UnpackOptions struct {
	// StringEncoding, when non-empty, causes STRING_EXT (and, with
	// DecodeBinaryAsText, BINARY_EXT) to be decoded as host text using this
	// codec rather than yielding a raw []byte. Only "utf-8" is supported.
	StringEncoding string

	// DecodeBinaryAsText additionally decodes BINARY_EXT as text when
	// StringEncoding is set (spec §4.3.5).
	DecodeBinaryAsText bool

	// WideBigInt mirrors PackOptions.WideBigInt for decoding (spec §9,
	// SPEC_FULL.md §5).
	WideBigInt bool
}

func (o UnpackOptions) bigIntCeiling() int {
	if o.WideBigInt {
		return 255
	}
	return 8
}

func (o PackOptions) bigIntCeiling() int {
	if o.WideBigInt {
		return 255
	}
	return 8
}
