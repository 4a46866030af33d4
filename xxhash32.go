package xxhash

import (
	"encoding/binary"
	"hash"
	"math/bits"
)

var _ hash.Hash32 = (*Hasher32)(nil)

const (
	prime32v1 uint32 = 0x9E3779B1
	prime32v2 uint32 = 0x85EBCA77
	prime32v3 uint32 = 0xC2B2AE3D
	prime32v4 uint32 = 0x27D4EB2F
	prime32v5 uint32 = 0x165667B1

	// Size32 is the size of an XXH32 digest in bytes.
	Size32 = 4

	// BlockSize32 is the number of bytes consumed by one round over the four
	// XXH32 lanes.
	BlockSize32 = 16
)

// Hasher32 is an incremental XXH32 accumulator.
//
// The zero value is not ready for use; create one with [New32] or
// [New32WithSeed]. A Hasher32 must not be written to concurrently.
type Hasher32 struct {
	seed  uint32
	v     [4]uint32
	total uint64
	buf   [BlockSize32]byte
	n     int
}

// New32 returns an XXH32 accumulator with seed 0.
func New32() *Hasher32 { return New32WithSeed(0) }

// New32WithSeed returns an XXH32 accumulator seeded with seed.
func New32WithSeed(seed uint32) *Hasher32 {
	h := &Hasher32{seed: seed}
	h.Reset()
	return h
}

// Sum32 returns the XXH32 digest of b with seed 0.
func Sum32(b []byte) uint32 { return Sum32WithSeed(b, 0) }

// Sum32String returns the XXH32 digest of s with seed 0.
func Sum32String(s string) uint32 { return Sum32WithSeed(stringBytes(s), 0) }

// Sum32WithSeed returns the XXH32 digest of b with the provided seed.
func Sum32WithSeed(b []byte, seed uint32) uint32 {
	n := len(b)

	var acc uint32
	if n >= BlockSize32 {
		v := lanes32(seed)
		b = blocks32(&v, b)
		acc = mergeLanes32(&v)
	} else {
		acc = seed + prime32v5
	}

	// The length is folded in modulo 2^32.
	acc += uint32(n)

	return avalanche32(tail32(acc, b))
}

// Write appends b to the running hash state. It never returns an error.
func (h *Hasher32) Write(b []byte) (int, error) {
	n := len(b)
	h.total += uint64(n)

	if h.n+n < BlockSize32 {
		h.n += copy(h.buf[h.n:], b)
		return n, nil
	}

	if h.n > 0 {
		c := copy(h.buf[h.n:], b)
		blocks32(&h.v, h.buf[:])
		b = b[c:]
		h.n = 0
	}

	b = blocks32(&h.v, b)
	h.n = copy(h.buf[:], b)

	return n, nil
}

// WriteString appends s to the running hash state. It never returns an
// error.
func (h *Hasher32) WriteString(s string) (int, error) {
	return h.Write(stringBytes(s))
}

// Sum32 returns the XXH32 digest of everything written so far. It does not
// change the hash state.
func (h *Hasher32) Sum32() uint32 {
	if h.n >= BlockSize32 {
		panic("xxhash: Hasher32 buffered length reached block size")
	}

	var acc uint32
	if h.total >= BlockSize32 {
		v := h.v
		acc = mergeLanes32(&v)
	} else {
		acc = h.seed + prime32v5
	}

	acc += uint32(h.total)

	return avalanche32(tail32(acc, h.buf[:h.n]))
}

// Digest is an alias for [Hasher32.Sum32] that satisfies [Hasher].
func (h *Hasher32) Digest() uint32 { return h.Sum32() }

// Sum appends the current digest to b in big-endian order.
func (h *Hasher32) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint32(b, h.Sum32())
}

// Reset restores the seed-derived initial state.
func (h *Hasher32) Reset() {
	h.v = lanes32(h.seed)
	h.total = 0
	h.n = 0
}

// Seed returns the seed the accumulator was created with.
func (h *Hasher32) Seed() uint32 { return h.seed }

// Len returns the total number of bytes written since the last reset.
func (h *Hasher32) Len() uint64 { return h.total }

// Size returns the digest size in bytes.
func (h *Hasher32) Size() int { return Size32 }

// BlockSize returns the number of bytes consumed per round.
func (h *Hasher32) BlockSize() int { return BlockSize32 }

func lanes32(seed uint32) [4]uint32 {
	return [4]uint32{
		seed + prime32v1 + prime32v2,
		seed + prime32v2,
		seed,
		seed - prime32v1,
	}
}

func blocks32(v *[4]uint32, b []byte) []byte {
	v1, v2, v3, v4 := v[0], v[1], v[2], v[3]
	for len(b) >= BlockSize32 {
		v1 = round32(v1, u32(b[0:4]))
		v2 = round32(v2, u32(b[4:8]))
		v3 = round32(v3, u32(b[8:12]))
		v4 = round32(v4, u32(b[12:16]))
		b = b[BlockSize32:]
	}
	v[0], v[1], v[2], v[3] = v1, v2, v3, v4

	return b
}

func round32(acc, input uint32) uint32 {
	acc += input * prime32v2
	acc = bits.RotateLeft32(acc, 13)
	acc *= prime32v1
	return acc
}

func mergeLanes32(v *[4]uint32) uint32 {
	return bits.RotateLeft32(v[0], 1) + bits.RotateLeft32(v[1], 7) +
		bits.RotateLeft32(v[2], 12) + bits.RotateLeft32(v[3], 18)
}

// tail32 mixes the final len(b) < BlockSize32 bytes into acc: 4-byte groups
// first, then single bytes.
func tail32(acc uint32, b []byte) uint32 {
	for ; len(b) >= 4; b = b[4:] {
		acc += u32(b) * prime32v3
		acc = bits.RotateLeft32(acc, 17) * prime32v4
	}

	for _, c := range b {
		acc += uint32(c) * prime32v5
		acc = bits.RotateLeft32(acc, 11) * prime32v1
	}

	return acc
}

func avalanche32(h uint32) uint32 {
	h ^= h >> 15
	h *= prime32v2
	h ^= h >> 13
	h *= prime32v3
	h ^= h >> 16
	return h
}
