package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlignUp(t *testing.T) {
	require.Equal(t, 48, AlignUp(11, 48))
	require.Equal(t, 48, AlignUp(48, 48))
	require.Equal(t, 720, AlignUp(677, 48))
	require.Equal(t, 16, AlignUp(15, 16))
	require.Equal(t, uint32(32), AlignUp(uint32(18), 16))
}

func TestAlias1D(t *testing.T) {
	s := make([]uint16, 8)
	require.True(t, Alias1D(s, s))
	require.True(t, Alias1D(s[:4], s[2:]))
	require.False(t, Alias1D(s, make([]uint16, 8)))
	require.False(t, Alias1D([]uint16{}, s))
}

func TestZero(t *testing.T) {
	s := []uint32{1, 2, 3}
	Zero(s)
	require.Equal(t, []uint32{0, 0, 0}, s)
}

func TestGCD(t *testing.T) {
	require.Equal(t, 6, GCD(12, 18))
	require.Equal(t, 1, GCD(677, 48))
	require.Equal(t, 5, GCD(5, 0))
	require.Equal(t, 4, GCD(-8, 12))
}

func TestRotateSliceAllocFree(t *testing.T) {
	for _, tc := range []struct {
		k        int
		expected []int
	}{
		{2, []int{3, 4, 5, 1, 2}},
		{-2, []int{4, 5, 1, 2, 3}},
		{0, []int{1, 2, 3, 4, 5}},
		{7, []int{3, 4, 5, 1, 2}},
	} {
		actual := make([]int, 5)
		RotateSliceAllocFree([]int{1, 2, 3, 4, 5}, tc.k, actual)
		require.Equal(t, tc.expected, actual, "k=%d", tc.k)
	}

	require.Panics(t, func() { RotateSliceAllocFree([]int{1, 2}, 1, make([]int, 3)) })
}

func TestRotateSliceInPlace(t *testing.T) {
	slice := []int{1, 2, 3, 4, 5}
	RotateSliceInPlace(slice, 2)
	expected := []int{3, 4, 5, 1, 2}
	require.Equal(t, expected, slice)

	slice = []int{1, 2, 3, 4, 5}
	RotateSliceInPlace(slice, -2)
	expected = []int{4, 5, 1, 2, 3}
	require.Equal(t, expected, slice)

	slice = []int{1, 2, 3, 4, 5, 6}
	RotateSliceInPlace(slice, 4)
	expected = []int{5, 6, 1, 2, 3, 4}
	require.Equal(t, expected, slice)
}
