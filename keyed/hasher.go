package keyed

import (
	"go.dw1.io/xxhash"
)

// Hasher hashes keys of type K to digests of width W. All keys hashed by
// one Hasher share a seed, so equal keys always produce equal digests.
//
// A Hasher is safe for concurrent use.
type Hasher[K any, W xxhash.Word] struct {
	seed W
}

// New returns a Hasher whose seed is taken from a hasher built by b. A nil
// b selects an [xxhash.RandomBuilder] over [xxhash.DefaultSource].
func New[K any, W xxhash.Word](b xxhash.Builder[W]) *Hasher[K, W] {
	if b == nil {
		b = xxhash.NewRandomBuilder[W](nil)
	}

	return &Hasher[K, W]{seed: b.Build().Seed()}
}

// Seed returns the seed every key is hashed with.
func (h *Hasher[K, W]) Seed() W { return h.seed }

// Hash returns the digest of key's canonical encoding.
func (h *Hasher[K, W]) Hash(key K) (W, error) {
	var scratch [64]byte

	b, err := AppendKey(scratch[:0], key)
	if err != nil {
		return 0, err
	}

	return xxhash.Sum(b, h.seed), nil
}

// MustHash is like Hash but panics if key cannot be encoded.
func (h *Hasher[K, W]) MustHash(key K) W {
	d, err := h.Hash(key)
	if err != nil {
		panic(err)
	}

	return d
}
