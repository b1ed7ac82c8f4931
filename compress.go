package erltf

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
)

// decodeCompressed handles the COMPRESSED_TERM envelope: a 4-byte
// big-endian inflated length followed by a zlib stream whose payload is
// itself a single encoded term (no version byte). The zlib stream is read
// to the end of the current buffer; COMPRESSED_TERM is only ever used to
// wrap an entire top-level term, never a sibling inside a containing
// sequence (see DESIGN.md).
func decodeCompressed(r *reader, tagOffset int, tagByte byte, opts UnpackOptions, depth int) (any, error) {
	inflatedLen, err := r.ReadU32BE()
	if err != nil {
		return nil, wrapDecodeError(ErrUnexpectedEnd, tagOffset, tagByte, "reading compressed payload length", err)
	}
	compressed, err := r.Take(r.Remaining())
	if err != nil {
		return nil, wrapDecodeError(ErrBadCompressedPayload, tagOffset, tagByte, "reading zlib stream", err)
	}

	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, wrapDecodeError(ErrBadCompressedPayload, tagOffset, tagByte, "opening zlib stream", err)
	}
	defer zr.Close()

	inflated, err := io.ReadAll(zr)
	if err != nil {
		return nil, wrapDecodeError(ErrBadCompressedPayload, tagOffset, tagByte, "inflating zlib stream", err)
	}
	if uint32(len(inflated)) != inflatedLen {
		return nil, newDecodeError(ErrBadCompressedPayload, tagOffset, tagByte, "inflated length does not match envelope header")
	}

	// Replace the active input in place with the inflated bytes (spec
	// §3.2/§4.3.7: the envelope "replaces the active input" for the
	// duration of its scope), rather than decoding through a second reader.
	r.reset(inflated)
	return decodeTerm(r, opts, depth+1)
}

// Compress packs value exactly as [Pack] would, then wraps the result's
// single term in a COMPRESSED_TERM envelope so it round-trips through
// [Unpack] unchanged. Pack itself has no compression knob and never emits
// COMPRESSED_TERM, so this is the only path that produces a compressed
// payload, provided for symmetry with [Unpack]'s ability to consume one.
func Compress(value any, opts PackOptions) ([]byte, error) {
	plain, err := Pack(value, opts)
	if err != nil {
		return nil, err
	}
	// plain[0] is the version byte; the compressed stream wraps everything
	// after it.
	term := plain[1:]

	var zbuf bytes.Buffer
	zw := zlib.NewWriter(&zbuf)
	if _, err := zw.Write(term); err != nil {
		zw.Close()
		return nil, wrapEncodeError(ErrUnsupportedValue, "writing zlib stream", err)
	}
	if err := zw.Close(); err != nil {
		return nil, wrapEncodeError(ErrUnsupportedValue, "closing zlib stream", err)
	}

	w := newWriter()
	if err := w.WriteU8(TermFormatVersion); err != nil {
		return nil, wrapEncodeError(ErrUnsupportedValue, "writing version byte", err)
	}
	if err := w.WriteU8(byte(CompressedTermExt)); err != nil {
		return nil, wrapEncodeError(ErrUnsupportedValue, "writing COMPRESSED_TERM tag", err)
	}
	if err := w.WriteU32BE(uint32(len(term))); err != nil {
		return nil, wrapEncodeError(ErrUnsupportedValue, "writing inflated length", err)
	}
	if err := w.WriteBytes(zbuf.Bytes()); err != nil {
		return nil, wrapEncodeError(ErrUnsupportedValue, "writing zlib stream", err)
	}
	return w.Bytes(), nil
}
