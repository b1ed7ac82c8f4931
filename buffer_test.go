package erltf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterEmitsBigEndian(t *testing.T) {
	w := newWriter()
	require.NoError(t, w.WriteU16BE(0x0102))
	require.NoError(t, w.WriteU32BE(0x01020304))
	require.Equal(t, []byte{0x01, 0x02, 0x01, 0x02, 0x03, 0x04}, w.Bytes())
}

func TestReaderTakeAdvancesCursor(t *testing.T) {
	r := newReader([]byte{1, 2, 3, 4})
	b, err := r.Take(2)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, b)
	require.Equal(t, 2, r.Offset())
	require.Equal(t, 2, r.Remaining())
}

func TestReaderTakePastEndFailsWithUnexpectedEnd(t *testing.T) {
	r := newReader([]byte{1, 2})
	_, err := r.Take(3)
	require.Error(t, err)

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	require.Equal(t, ErrUnexpectedEnd, decErr.Kind)
}

func TestReaderResetReplacesBufferAndCursor(t *testing.T) {
	r := newReader([]byte{1, 2, 3})
	_, err := r.Take(3)
	require.NoError(t, err)
	require.Equal(t, 0, r.Remaining())

	r.reset([]byte{9, 9})
	require.Equal(t, 0, r.Offset())
	require.Equal(t, 2, r.Remaining())
}

func TestReaderFloatRoundTrip(t *testing.T) {
	w := newWriter()
	require.NoError(t, w.WriteF64BE(1.0))

	r := newReader(w.Bytes())
	v, err := r.ReadF64BE()
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}
