package erltf

import (
	"bytes"
	"encoding/binary"
	"math"
)

// DefaultBufferSize is the initial capacity reserved for a new [writer].
// Sized for typical small-to-medium terms; bytes.Buffer grows past this
// transparently for larger payloads, so this is an optimization, not a
// contract. Kept as a package var so embedders packing consistently large
// terms can raise it to avoid reallocation.
var DefaultBufferSize = 2048

// writer is the append-only output half of the byte buffer.
type writer struct {
	buf *bytes.Buffer
}

func newWriter() *writer {
	w := &writer{buf: bytes.NewBuffer(make([]byte, 0, DefaultBufferSize))}
	return w
}

func (w *writer) WriteU8(v byte) error {
	return w.buf.WriteByte(v)
}

func (w *writer) WriteU16BE(v uint16) error {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	_, err := w.buf.Write(tmp[:])
	return err
}

func (w *writer) WriteU32BE(v uint32) error {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	_, err := w.buf.Write(tmp[:])
	return err
}

func (w *writer) WriteU64BE(v uint64) error {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	_, err := w.buf.Write(tmp[:])
	return err
}

func (w *writer) WriteF64BE(v float64) error {
	return w.WriteU64BE(math.Float64bits(v))
}

func (w *writer) WriteBytes(p []byte) error {
	_, err := w.buf.Write(p)
	return err
}

func (w *writer) Bytes() []byte {
	return w.buf.Bytes()
}

func (w *writer) Len() int {
	return w.buf.Len()
}

// reader is the bounded, random-access input half of the byte buffer. Its
// cursor is monotonically non-decreasing within a single decode call except
// when the compressed envelope installs fresh input via [reader.reset].
type reader struct {
	data   []byte
	offset int
}

func newReader(data []byte) *reader {
	return &reader{data: data}
}

// reset replaces the active input in place, moving the cursor back to 0.
// Used exclusively by the COMPRESSED_TERM envelope.
func (r *reader) reset(data []byte) {
	r.data = data
	r.offset = 0
}

func (r *reader) Remaining() int {
	return len(r.data) - r.offset
}

func (r *reader) Offset() int {
	return r.offset
}

// Take returns the next n bytes and advances the cursor, or fails with
// ErrUnexpectedEnd if fewer than n bytes remain.
func (r *reader) Take(n int) ([]byte, error) {
	if n < 0 || r.offset+n > len(r.data) {
		return nil, newDecodeError(ErrUnexpectedEnd, r.offset, 0,
			"not enough input remaining")
	}
	b := r.data[r.offset : r.offset+n]
	r.offset += n
	return b, nil
}

// Peek returns the next byte without advancing the cursor.
func (r *reader) Peek() (byte, error) {
	if r.offset >= len(r.data) {
		return 0, newDecodeError(ErrUnexpectedEnd, r.offset, 0, "no bytes remaining to peek")
	}
	return r.data[r.offset], nil
}

func (r *reader) ReadU8() (byte, error) {
	b, err := r.Take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) ReadU16BE() (uint16, error) {
	b, err := r.Take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *reader) ReadU32BE() (uint32, error) {
	b, err := r.Take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *reader) ReadU64BE() (uint64, error) {
	b, err := r.Take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (r *reader) ReadF64BE() (float64, error) {
	v, err := r.ReadU64BE()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}
