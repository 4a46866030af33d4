package xxhash_test

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"go.dw1.io/xxhash"
)

type fixedSource uint64

func (s fixedSource) Uint64() uint64 { return uint64(s) }

func TestRandomBuilderUsesInjectedSource(t *testing.T) {
	data := []byte("some bytes")

	b64 := xxhash.NewRandomBuilder[uint64](fixedSource(1234))
	h := b64.Build()
	h.Write(data)
	require.Equal(t, uint64(1234), h.Seed())
	require.Equal(t, uint64(0xEAB55659A496D78B), h.Digest())

	b32 := xxhash.NewRandomBuilder[uint32](fixedSource(0xFFFF_FFFF_0000_04D2))
	h32 := b32.Build()
	h32.Write(data)
	require.Equal(t, uint32(1234), h32.Seed())
	require.Equal(t, uint32(0x92F68BD9), h32.Digest())
}

func TestRandomBuilderDeterministicWithPCG(t *testing.T) {
	a := xxhash.NewRandomBuilder[uint64](rand.NewPCG(1, 2))
	b := xxhash.NewRandomBuilder[uint64](rand.NewPCG(1, 2))

	for i := 0; i < 10; i++ {
		require.Equal(t, a.Build().Seed(), b.Build().Seed())
	}
}

func TestRandomBuilderVariance(t *testing.T) {
	data := []byte("the same data for every hasher")

	b := xxhash.NewRandomBuilder[uint64](nil)
	digests := make(map[uint64]struct{})
	for i := 0; i < 100; i++ {
		h := b.Build()
		h.Write(data)
		digests[h.Digest()] = struct{}{}
	}
	require.Len(t, digests, 100)

	first, second := xxhash.NewRandom64(), xxhash.NewRandom64()
	first.Write(data)
	second.Write(data)
	require.NotEqual(t, first.Sum64(), second.Sum64())

	f32, s32 := xxhash.NewRandom32(), xxhash.NewRandom32()
	require.NotEqual(t, f32.Seed(), s32.Seed())
}

func TestDefaultSourceConcurrentDraws(t *testing.T) {
	const (
		workers = 8
		draws   = 2000
	)

	src := xxhash.DefaultSource()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[uint64]struct{}, workers*draws)
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			local := make([]uint64, 0, draws)
			for i := 0; i < draws; i++ {
				local = append(local, src.Uint64())
			}

			mu.Lock()
			defer mu.Unlock()
			for _, v := range local {
				seen[v] = struct{}{}
			}
		}()
	}
	wg.Wait()

	require.Len(t, seen, workers*draws)
}
