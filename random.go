package xxhash

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"sync/atomic"
)

// Source produces seeds for randomly seeded hashers.
//
// It has the same method set as [math/rand/v2.Source], so a seeded PCG or
// ChaCha8 generator can stand in for the default source in tests. Sources
// other than [DefaultSource] are not required to be safe for concurrent use;
// a [RandomBuilder] over such a source must not be shared across goroutines.
type Source interface {
	Uint64() uint64
}

// entropySource draws seeds from a process-wide key and a draw counter.
// Each half of the output is a keyed bijection of the counter, so no seed
// repeats within 2^32 consecutive draws for either width.
type entropySource struct {
	key   uint64
	draws atomic.Uint64
}

var defaultSource = sync.OnceValue(func() *entropySource {
	var b [8]byte
	// crypto/rand.Read never returns an error.
	_, _ = rand.Read(b[:])

	return &entropySource{key: binary.LittleEndian.Uint64(b[:])}
})

// DefaultSource returns the process-wide seed source. Its key is read once
// from crypto/rand, so seeds differ across runs. It is safe for concurrent
// use and never hands out the same seed twice to concurrent callers.
func DefaultSource() Source { return defaultSource() }

func (s *entropySource) Uint64() uint64 {
	n := s.draws.Add(1)
	lo := avalanche32(uint32(n) ^ uint32(s.key))
	hi := avalanche32(uint32(n>>32) ^ uint32(s.key>>32) ^ lo)

	return uint64(hi)<<32 | uint64(lo)
}

// RandomBuilder builds hashers whose seeds are drawn from a [Source], one
// fresh seed per [RandomBuilder.Build] call.
type RandomBuilder[W Word] struct {
	src Source
}

var (
	_ Builder[uint32] = (*RandomBuilder[uint32])(nil)
	_ Builder[uint64] = (*RandomBuilder[uint64])(nil)
)

// NewRandomBuilder returns a RandomBuilder drawing from src. A nil src selects
// [DefaultSource].
func NewRandomBuilder[W Word](src Source) *RandomBuilder[W] {
	if src == nil {
		src = DefaultSource()
	}

	return &RandomBuilder[W]{src: src}
}

// Build returns a hasher with a freshly drawn seed. XXH32 seeds are the low
// 32 bits of the drawn value.
func (b *RandomBuilder[W]) Build() Hasher[W] {
	return New(W(b.src.Uint64()))
}

// NewRandom64 returns an XXH64 accumulator seeded from [DefaultSource].
func NewRandom64() *Hasher64 {
	return New64WithSeed(DefaultSource().Uint64())
}

// NewRandom32 returns an XXH32 accumulator seeded from [DefaultSource].
func NewRandom32() *Hasher32 {
	return New32WithSeed(uint32(DefaultSource().Uint64()))
}
