// Package xxhash provides a Go implementation of the XXH32 and XXH64
// non-cryptographic hash algorithms.
//
// Every digest is bit-exact with the reference xxHash implementation and
// independent of the host byte order. Each width comes in two forms that
// always agree with each other:
//
//   - one-shot sums over a complete byte slice ([Sum64WithSeed],
//     [Sum32WithSeed]);
//   - incremental accumulators ([Hasher64], [Hasher32]) that take the input
//     in arbitrary pieces and can be queried with [Hasher64.Sum64] at any
//     point without disturbing further writes.
//
// The accumulators satisfy [hash.Hash64] and [hash.Hash32]. Both widths also
// satisfy the width-parametric [Hasher] contract, so code that does not care
// about the width can use [New] and [Sum].
//
// For keyed collections exposed to untrusted input, [NewRandom64] and
// [RandomBuilder] seed each accumulator from a [Source] that is unpredictable
// across process runs. The hash is not collision resistant against an
// adversary that knows the seed.
package xxhash
