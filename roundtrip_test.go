package erltf

import (
	"errors"
	"math/big"
	"testing"
	"testing/quick"
)

// Property tests for spec §8.1's universal properties. Uses stdlib
// testing/quick rather than a third-party property-testing library: no
// example repo in the retrieval pack imports one (see DESIGN.md).

func TestQuickVersionPrefix(t *testing.T) {
	f := func(n int32) bool {
		b, err := Pack(int(n), PackOptions{})
		if err != nil {
			return false
		}
		return b[0] == TermFormatVersion
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 500}); err != nil {
		t.Error(err)
	}
}

func TestQuickRoundTripInt32(t *testing.T) {
	f := func(n int32) bool {
		data, err := Pack(int(n), PackOptions{})
		if err != nil {
			return false
		}
		got, err := Unpack(data, UnpackOptions{})
		if err != nil {
			return false
		}
		return got == int(n)
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 1000}); err != nil {
		t.Error(err)
	}
}

func TestQuickRoundTripString(t *testing.T) {
	f := func(s string) bool {
		if len(s) > 65000 {
			s = s[:65000]
		}
		data, err := Pack(s, PackOptions{UnicodeMode: ENCODE_AS_STR})
		if err != nil {
			return false
		}
		got, err := Unpack(data, UnpackOptions{StringEncoding: "utf-8"})
		if err != nil {
			return false
		}
		return got == s
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 500}); err != nil {
		t.Error(err)
	}
}

func TestQuickRoundTripBool(t *testing.T) {
	f := func(v bool) bool {
		data, err := Pack(v, PackOptions{})
		if err != nil {
			return false
		}
		got, err := Unpack(data, UnpackOptions{})
		if err != nil {
			return false
		}
		return got == v
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestQuickRoundTripIntList(t *testing.T) {
	f := func(xs []int32) bool {
		elems := make([]any, len(xs))
		for i, x := range xs {
			elems[i] = int(x)
		}
		data, err := Pack(List(elems), PackOptions{})
		if err != nil {
			return false
		}
		got, err := Unpack(data, UnpackOptions{})
		if err != nil {
			return false
		}
		gotList, ok := got.([]any)
		if !ok {
			return false
		}
		if len(gotList) != len(elems) {
			return false
		}
		for i := range elems {
			if gotList[i] != elems[i] {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 300}); err != nil {
		t.Error(err)
	}
}

// TestQuickTruncationAlwaysFails exercises §8.1 property 10: truncating any
// valid encoding anywhere before its end must fail with UnexpectedEnd-class
// errors, never a crash or a silently-wrong value.
func TestQuickTruncationAlwaysFails(t *testing.T) {
	f := func(n int32) bool {
		full, err := Pack(Tuple{int(n), "x", List{1, 2}}, PackOptions{})
		if err != nil {
			return false
		}
		for k := 0; k < len(full); k++ {
			_, err := Unpack(full[:k], UnpackOptions{})
			var decErr *DecodeError
			if !errors.As(err, &decErr) || decErr.Kind != ErrUnexpectedEnd {
				return false
			}
		}
		_, err = Unpack(full, UnpackOptions{})
		return err == nil
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 200}); err != nil {
		t.Error(err)
	}
}

// TestQuickBigIntRoundTrip covers the BigInt term variant, which quick
// cannot generate natively (no Generator for *big.Int in stdlib), so the
// magnitude is derived from the native int64 quick drives instead.
func TestQuickBigIntRoundTrip(t *testing.T) {
	f := func(n int64) bool {
		val := new(big.Int).Lsh(big.NewInt(1), 40)
		val.Add(val, big.NewInt(n%1000))
		data, err := Pack(val, PackOptions{})
		if err != nil {
			return false
		}
		got, err := Unpack(data, UnpackOptions{})
		if err != nil {
			return false
		}
		gotBig, ok := got.(*big.Int)
		if !ok {
			return false
		}
		return val.Cmp(gotBig) == 0
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 200}); err != nil {
		t.Error(err)
	}
}
