package xxhash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferInvariantPanics(t *testing.T) {
	h64 := New64()
	h64.n = BlockSize64
	require.Panics(t, func() { h64.Sum64() })

	h32 := New32()
	h32.n = BlockSize32
	require.Panics(t, func() { h32.Sum32() })
}

func TestBufferStaysBelowBlockSize(t *testing.T) {
	h64 := New64()
	h32 := New32()
	for size := 0; size < 3*BlockSize64; size++ {
		h64.Write(make([]byte, size))
		h32.Write(make([]byte, size))
		require.Less(t, h64.n, BlockSize64)
		require.Less(t, h32.n, BlockSize32)
	}
}

func TestLaneInitialization(t *testing.T) {
	require.Equal(t, [4]uint64{0x60EA27EEADC0B5D6, prime64v2, 0, 0x61C8864E7A143579}, lanes64(0))
	require.Equal(t, [4]uint32{0x24234428, prime32v2, 0, 0x61C8864F}, lanes32(0))
}

func TestEntropySourceDoesNotRepeat(t *testing.T) {
	src := &entropySource{key: 0x0123456789ABCDEF}

	seen64 := make(map[uint64]struct{})
	seen32 := make(map[uint32]struct{})
	for i := 0; i < 1<<16; i++ {
		v := src.Uint64()

		_, dup := seen64[v]
		require.False(t, dup, "64-bit seed %#x repeated", v)
		seen64[v] = struct{}{}

		_, dup = seen32[uint32(v)]
		require.False(t, dup, "32-bit seed %#x repeated", uint32(v))
		seen32[uint32(v)] = struct{}{}
	}
}
