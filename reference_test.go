package xxhash_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	oneofone "github.com/OneOfOne/xxhash"
	cespare "github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"

	"go.dw1.io/xxhash"
)

var referenceLengths = func() []int {
	lengths := make([]int, 0, 300)
	for n := 0; n <= 2*xxhash.BlockSize64+1; n++ {
		lengths = append(lengths, n)
	}
	return append(lengths, 100, 127, 128, 129, 240, 255, 256, 1000, 1023, 1024, 4095, 4096, 65537)
}()

func TestMatchesCespare(t *testing.T) {
	data := randomBytes(65537, 23)

	for _, n := range referenceLengths {
		want := cespare.Sum64(data[:n])
		require.Equal(t, want, xxhash.Sum64(data[:n]), "len %d", n)

		d := cespare.New()
		h := xxhash.New64()
		for rest := data[:n]; len(rest) > 0; {
			c := min(len(rest), 7)
			d.Write(rest[:c])
			h.Write(rest[:c])
			rest = rest[c:]
		}
		require.Equal(t, d.Sum64(), h.Sum64(), "streaming len %d", n)
	}
}

func TestMatchesOneOfOne(t *testing.T) {
	data := randomBytes(65537, 29)

	for i, n := range referenceLengths {
		seed := uint64(i) * 0x9E3779B97F4A7C15

		require.Equal(t, oneofone.Checksum64S(data[:n], seed),
			xxhash.Sum64WithSeed(data[:n], seed), "XXH64 len %d", n)
		require.Equal(t, oneofone.Checksum32S(data[:n], uint32(seed)),
			xxhash.Sum32WithSeed(data[:n], uint32(seed)), "XXH32 len %d", n)
	}
}

// The LZ4 frame format ends with the XXH32 (seed 0) of the uncompressed
// content.
func TestMatchesLZ4ContentChecksum(t *testing.T) {
	data := randomBytes(70000, 31)

	for _, n := range []int{1, 15, 16, 17, 1000, 70000} {
		var buf bytes.Buffer
		zw := lz4.NewWriter(&buf)
		require.NoError(t, zw.Apply(lz4.ChecksumOption(true)))
		_, err := zw.Write(data[:n])
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		frame := buf.Bytes()
		want := binary.LittleEndian.Uint32(frame[len(frame)-4:])
		require.Equal(t, want, xxhash.Sum32(data[:n]), "len %d", n)
	}
}

// Zstandard frames end with the low 32 bits of the XXH64 (seed 0) of the
// uncompressed content.
func TestMatchesZstdContentChecksum(t *testing.T) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderCRC(true))
	require.NoError(t, err)
	t.Cleanup(func() { enc.Close() })

	data := randomBytes(70000, 37)

	for _, n := range []int{1, 31, 32, 33, 1000, 70000} {
		frame := enc.EncodeAll(data[:n], nil)
		want := binary.LittleEndian.Uint32(frame[len(frame)-4:])
		require.Equal(t, want, uint32(xxhash.Sum64(data[:n])), "len %d", n)
	}
}
