package file

import (
	"errors"
	"fmt"
)

// ErrInvalidOption indicates that an option was malformed.
var ErrInvalidOption = errors.New("invalid file hashing option")

// DefaultBufferSize is the read buffer size of the streaming fallback.
const DefaultBufferSize = 64 << 10

// Option configures a Sum call.
type Option func(*config) error

type config struct {
	seed    uint64
	bufSize int
	mmap    bool
}

func defaultConfig() config {
	return config{bufSize: DefaultBufferSize, mmap: true}
}

func newConfig(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

// WithSeed sets the hash seed. For the 32-bit sums the seed must fit in 32
// bits.
func WithSeed(seed uint64) Option {
	return func(cfg *config) error {
		cfg.seed = seed

		return nil
	}
}

// WithBufferSize sets the read buffer size used when the file is not
// memory-mapped.
func WithBufferSize(n int) Option {
	return func(cfg *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: buffer size must be positive, got %d", ErrInvalidOption, n)
		}

		cfg.bufSize = n

		return nil
	}
}

// WithoutMmap forces the buffered os.File path.
func WithoutMmap() Option {
	return func(cfg *config) error {
		cfg.mmap = false

		return nil
	}
}
