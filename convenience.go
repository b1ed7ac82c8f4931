package erltf

// PackAll encodes each value in values as an independent versioned term and
// concatenates the results. Pack itself stays single-term; this is a purely
// additive layer built on top of it for callers that want to bundle several
// values without wrapping them in an explicit tuple or list.
func PackAll(values []any, opts PackOptions) ([]byte, error) {
	var out []byte
	for _, v := range values {
		b, err := Pack(v, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// UnpackAll decodes data as a back-to-back sequence of versioned terms,
// returning each in order. It stops only once every byte of data has been
// consumed by a complete term; a short trailing fragment after the last
// complete term is reported as an error rather than silently dropped.
func UnpackAll(data []byte, opts UnpackOptions) ([]any, error) {
	var values []any
	r := newReader(data)
	for r.Remaining() > 0 {
		start := r.Offset()
		version, err := r.ReadU8()
		if err != nil {
			// As in Unpack: a failed read (no bytes left) is truncation, not
			// a bad version; propagate the reader's own ErrUnexpectedEnd.
			return nil, err
		}
		if version != TermFormatVersion {
			return nil, newDecodeError(ErrBadVersion, start, version, "expected version byte 0x83")
		}
		v, err := decodeTerm(r, opts, 0)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
