// Package file computes xxhash digests of files, preferring memory-mapped
// I/O via [mmapfile] and falling back to buffered reads through [os.File]
// when mapping is unavailable (empty files, pipes, devices, unsupported
// platforms).
//
// A mapped file is hashed in one shot over the mapped region; a file read
// through the fallback is streamed through an incremental accumulator. Both
// paths produce the same digest.
//
//	d, err := file.Sum64("release.tar", file.WithSeed(42))
//
// [SumReader64] and [SumReader32] hash arbitrary readers such as standard
// input.
package file
