package file

import (
	"fmt"
	"io"

	"go.dw1.io/safemath"
	"go.dw1.io/xxhash"
)

// Sum64 returns the XXH64 digest of the named file.
func Sum64(name string, opts ...Option) (uint64, error) {
	return sumFile[uint64](name, opts)
}

// Sum32 returns the XXH32 digest of the named file.
func Sum32(name string, opts ...Option) (uint32, error) {
	return sumFile[uint32](name, opts)
}

// SumReader64 returns the XXH64 digest of everything read from r.
func SumReader64(r io.Reader, opts ...Option) (uint64, error) {
	return sumReaderOpts[uint64](r, opts)
}

// SumReader32 returns the XXH32 digest of everything read from r.
func SumReader32(r io.Reader, opts ...Option) (uint32, error) {
	return sumReaderOpts[uint32](r, opts)
}

func sumFile[W xxhash.Word](name string, opts []Option) (W, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return 0, err
	}

	seed, err := seedFor[W](cfg.seed)
	if err != nil {
		return 0, err
	}

	var f *File
	if cfg.mmap {
		f, err = Open(name)
	} else {
		f, err = openDirect(name)
	}
	if err != nil {
		return 0, err
	}
	defer f.Close()

	if b := f.Bytes(); b != nil {
		return xxhash.Sum(b, seed), nil
	}

	return sumReader(f, seed, cfg.bufSize)
}

func sumReaderOpts[W xxhash.Word](r io.Reader, opts []Option) (W, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return 0, err
	}

	seed, err := seedFor[W](cfg.seed)
	if err != nil {
		return 0, err
	}

	return sumReader(r, seed, cfg.bufSize)
}

func sumReader[W xxhash.Word](r io.Reader, seed W, bufSize int) (W, error) {
	h := xxhash.New(seed)
	buf := make([]byte, bufSize)

	for {
		n, err := r.Read(buf)
		h.Write(buf[:n])

		if err == io.EOF {
			return h.Digest(), nil
		}
		if err != nil {
			return 0, err
		}
	}
}

func seedFor[W xxhash.Word](seed uint64) (W, error) {
	var zero W
	if _, ok := any(zero).(uint32); ok {
		s, err := safemath.ConvertAny[uint32](seed)
		if err != nil {
			return 0, fmt.Errorf("%w: seed %#x does not fit XXH32: %v", ErrInvalidOption, seed, err)
		}

		return W(s), nil
	}

	return W(seed), nil
}
