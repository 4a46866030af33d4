// Package keyed maps arbitrary keys onto xxhash digests for use in hash
// tables and other keyed collections.
//
// A key is first serialized with [AppendKey] into a canonical byte form and
// then hashed with a seed chosen once per [Hasher]. Building the Hasher from
// an [xxhash.RandomBuilder] gives every collection its own unpredictable
// seed; building it from an [xxhash.SeedBuilder] makes digests reproducible.
package keyed
