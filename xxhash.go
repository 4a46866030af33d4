package xxhash

import (
	"io"
	"unsafe"
)

// Word is the set of digest widths: uint32 for XXH32 and uint64 for XXH64.
type Word interface {
	uint32 | uint64
}

// Hasher is the contract shared by [Hasher32] and [Hasher64].
//
// Digest is read-only: it may be called any number of times, interleaved
// with further writes, and always reflects everything written so far.
type Hasher[W Word] interface {
	io.Writer
	io.StringWriter

	// Digest returns the digest of the data written so far.
	Digest() W

	// Seed returns the seed the hasher was created with.
	Seed() W

	// Len returns the number of bytes written since the last reset.
	Len() uint64

	// Reset restores the seed-derived initial state.
	Reset()
}

var (
	_ Hasher[uint32] = (*Hasher32)(nil)
	_ Hasher[uint64] = (*Hasher64)(nil)
)

// New returns an accumulator of width W seeded with seed.
func New[W Word](seed W) Hasher[W] {
	switch s := any(seed).(type) {
	case uint32:
		return any(New32WithSeed(s)).(Hasher[W])
	default:
		return any(New64WithSeed(s.(uint64))).(Hasher[W])
	}
}

// Sum returns the digest of width W of b with the provided seed.
func Sum[W Word](b []byte, seed W) W {
	switch s := any(seed).(type) {
	case uint32:
		return W(Sum32WithSeed(b, s))
	default:
		return W(Sum64WithSeed(b, s.(uint64)))
	}
}

// Builder constructs hashers of width W. Collections use a Builder to obtain
// one hasher per key.
type Builder[W Word] interface {
	Build() Hasher[W]
}

// SeedBuilder builds hashers that all share a fixed seed.
type SeedBuilder[W Word] struct {
	Seed W
}

var (
	_ Builder[uint32] = SeedBuilder[uint32]{}
	_ Builder[uint64] = SeedBuilder[uint64]{}
)

// Build returns a new hasher seeded with b.Seed.
func (b SeedBuilder[W]) Build() Hasher[W] { return New(b.Seed) }

// stringBytes returns the bytes of s without copying. The result must not be
// modified.
func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
