package erltf

import "fmt"

// encodeToCodec converts a Go string to bytes for the named text codec.
// Go strings are already UTF-8, so "utf-8" is a zero-copy identity
// conversion; any other name is rejected. No third-party charset-
// conversion library is wired in here — see DESIGN.md for why.
func encodeToCodec(s string, codec string) ([]byte, error) {
	if codec != "utf-8" {
		return nil, fmt.Errorf("unsupported string_encoding %q", codec)
	}
	return []byte(s), nil
}

// decodeFromCodec converts bytes back to a Go string for the named text
// codec. Mirrors encodeToCodec.
func decodeFromCodec(b []byte, codec string) (string, error) {
	if codec != "utf-8" {
		return "", fmt.Errorf("unsupported string_encoding %q", codec)
	}
	return string(b), nil
}
