package xxhash

import (
	"encoding/binary"
	"hash"
	"math/bits"
)

var _ hash.Hash64 = (*Hasher64)(nil)

const (
	prime64v1 uint64 = 0x9E3779B185EBCA87
	prime64v2 uint64 = 0xC2B2AE3D27D4EB4F
	prime64v3 uint64 = 0x165667B19E3779F9
	prime64v4 uint64 = 0x85EBCA77C2B2AE63
	prime64v5 uint64 = 0x27D4EB2F165667C5

	// Size64 is the size of an XXH64 digest in bytes.
	Size64 = 8

	// BlockSize64 is the number of bytes consumed by one round over the four
	// XXH64 lanes.
	BlockSize64 = 32
)

// Hasher64 is an incremental XXH64 accumulator.
//
// The zero value is not ready for use; create one with [New64] or
// [New64WithSeed]. A Hasher64 must not be written to concurrently.
type Hasher64 struct {
	seed  uint64
	v     [4]uint64
	total uint64
	buf   [BlockSize64]byte
	n     int
}

// New64 returns an XXH64 accumulator with seed 0.
func New64() *Hasher64 { return New64WithSeed(0) }

// New64WithSeed returns an XXH64 accumulator seeded with seed.
func New64WithSeed(seed uint64) *Hasher64 {
	h := &Hasher64{seed: seed}
	h.Reset()
	return h
}

// Sum64 returns the XXH64 digest of b with seed 0.
func Sum64(b []byte) uint64 { return Sum64WithSeed(b, 0) }

// Sum64String returns the XXH64 digest of s with seed 0.
func Sum64String(s string) uint64 { return Sum64WithSeed(stringBytes(s), 0) }

// Sum64WithSeed returns the XXH64 digest of b with the provided seed.
func Sum64WithSeed(b []byte, seed uint64) uint64 {
	n := len(b)

	var acc uint64
	if n >= BlockSize64 {
		v := lanes64(seed)
		b = blocks64(&v, b)
		acc = mergeLanes64(&v)
	} else {
		acc = seed + prime64v5
	}

	acc += uint64(n)

	return avalanche64(tail64(acc, b))
}

// Write appends b to the running hash state. It never returns an error.
func (h *Hasher64) Write(b []byte) (int, error) {
	n := len(b)
	h.total += uint64(n)

	if h.n+n < BlockSize64 {
		h.n += copy(h.buf[h.n:], b)
		return n, nil
	}

	if h.n > 0 {
		c := copy(h.buf[h.n:], b)
		blocks64(&h.v, h.buf[:])
		b = b[c:]
		h.n = 0
	}

	b = blocks64(&h.v, b)
	h.n = copy(h.buf[:], b)

	return n, nil
}

// WriteString appends s to the running hash state. It never returns an
// error.
func (h *Hasher64) WriteString(s string) (int, error) {
	return h.Write(stringBytes(s))
}

// Sum64 returns the XXH64 digest of everything written so far. It does not
// change the hash state, so more data may be written afterwards.
func (h *Hasher64) Sum64() uint64 {
	if h.n >= BlockSize64 {
		panic("xxhash: Hasher64 buffered length reached block size")
	}

	var acc uint64
	if h.total >= BlockSize64 {
		v := h.v
		acc = mergeLanes64(&v)
	} else {
		acc = h.seed + prime64v5
	}

	acc += h.total

	return avalanche64(tail64(acc, h.buf[:h.n]))
}

// Digest is an alias for [Hasher64.Sum64] that satisfies [Hasher].
func (h *Hasher64) Digest() uint64 { return h.Sum64() }

// Sum appends the current digest to b in big-endian order.
func (h *Hasher64) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, h.Sum64())
}

// Reset restores the seed-derived initial state.
func (h *Hasher64) Reset() {
	h.v = lanes64(h.seed)
	h.total = 0
	h.n = 0
}

// Seed returns the seed the accumulator was created with.
func (h *Hasher64) Seed() uint64 { return h.seed }

// Len returns the total number of bytes written since the last reset.
func (h *Hasher64) Len() uint64 { return h.total }

// Size returns the digest size in bytes.
func (h *Hasher64) Size() int { return Size64 }

// BlockSize returns the number of bytes consumed per round.
func (h *Hasher64) BlockSize() int { return BlockSize64 }

func lanes64(seed uint64) [4]uint64 {
	return [4]uint64{
		seed + prime64v1 + prime64v2,
		seed + prime64v2,
		seed,
		seed - prime64v1,
	}
}

// blocks64 runs every complete block of b through the lanes and returns the
// unconsumed remainder.
func blocks64(v *[4]uint64, b []byte) []byte {
	v1, v2, v3, v4 := v[0], v[1], v[2], v[3]
	for len(b) >= BlockSize64 {
		v1 = round64(v1, u64(b[0:8]))
		v2 = round64(v2, u64(b[8:16]))
		v3 = round64(v3, u64(b[16:24]))
		v4 = round64(v4, u64(b[24:32]))
		b = b[BlockSize64:]
	}
	v[0], v[1], v[2], v[3] = v1, v2, v3, v4

	return b
}

func round64(acc, input uint64) uint64 {
	acc += input * prime64v2
	acc = bits.RotateLeft64(acc, 31)
	acc *= prime64v1
	return acc
}

func mergeRound64(acc, lane uint64) uint64 {
	acc ^= round64(0, lane)
	acc = acc*prime64v1 + prime64v4
	return acc
}

func mergeLanes64(v *[4]uint64) uint64 {
	acc := bits.RotateLeft64(v[0], 1) + bits.RotateLeft64(v[1], 7) +
		bits.RotateLeft64(v[2], 12) + bits.RotateLeft64(v[3], 18)
	acc = mergeRound64(acc, v[0])
	acc = mergeRound64(acc, v[1])
	acc = mergeRound64(acc, v[2])
	acc = mergeRound64(acc, v[3])
	return acc
}

// tail64 mixes the final len(b) < BlockSize64 bytes into acc: 8-byte groups
// first, then at most one 4-byte group, then single bytes.
func tail64(acc uint64, b []byte) uint64 {
	for ; len(b) >= 8; b = b[8:] {
		acc ^= round64(0, u64(b))
		acc = bits.RotateLeft64(acc, 27)*prime64v1 + prime64v4
	}

	if len(b) >= 4 {
		acc ^= uint64(u32(b)) * prime64v1
		acc = bits.RotateLeft64(acc, 23)*prime64v2 + prime64v3
		b = b[4:]
	}

	for _, c := range b {
		acc ^= uint64(c) * prime64v5
		acc = bits.RotateLeft64(acc, 11) * prime64v1
	}

	return acc
}

func avalanche64(h uint64) uint64 {
	h ^= h >> 33
	h *= prime64v2
	h ^= h >> 29
	h *= prime64v3
	h ^= h >> 32
	return h
}

func u64(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }
func u32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }
