package erltf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapSetOverwritesExistingKey(t *testing.T) {
	m := Map{}
	m = m.Set(Tuple{1, 2}, "first")
	m = m.Set(Tuple{1, 2}, "second")

	require.Len(t, m.Pairs, 1)
	v, ok := m.Get(Tuple{1, 2})
	require.True(t, ok)
	require.Equal(t, "second", v)
}

func TestMapGetMissingKey(t *testing.T) {
	m := Map{}
	_, ok := m.Get("missing")
	require.False(t, ok)
}

func TestTermEqualUsesStructuralComparison(t *testing.T) {
	require.True(t, termEqual(Tuple{1, "a"}, Tuple{1, "a"}))
	require.False(t, termEqual(Tuple{1, "a"}, Tuple{1, "b"}))
}

func TestSetEncodesAsListOfElements(t *testing.T) {
	b, err := Pack(Set{1, 2, 3}, PackOptions{})
	require.NoError(t, err)
	require.Equal(t, byte(ListExt), b[1])

	empty, err := Pack(Set{}, PackOptions{})
	require.NoError(t, err)
	require.Equal(t, []byte{0x83, 0x6A}, empty)
}
