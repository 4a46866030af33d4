package sandbox

import (
	"errors"
	"fmt"
)

// ErrInvalidOption indicates that an option was malformed or incomplete.
var ErrInvalidOption = errors.New("invalid sandbox option")

// ErrUnsupportedPlatform indicates that the platform has no Landlock.
var ErrUnsupportedPlatform = errors.New("landlock is unsupported on this platform")

// Option configures a Restrict call.
type Option func(*config) error

type config struct {
	bestEffort bool
	readOnly   []string
}

func newConfig(opts []Option) (config, error) {
	var cfg config
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

// WithBestEffort downgrades to the strongest Landlock ABI the kernel
// supports, and to no restriction at all on kernels without Landlock.
func WithBestEffort() Option {
	return func(cfg *config) error {
		cfg.bestEffort = true

		return nil
	}
}

// WithReadOnly allows reading the given files, or everything below the
// given directories.
func WithReadOnly(paths ...string) Option {
	return func(cfg *config) error {
		for _, p := range paths {
			if p == "" {
				return fmt.Errorf("%w: read-only rule requires a path", ErrInvalidOption)
			}
		}

		cfg.readOnly = append(cfg.readOnly, paths...)

		return nil
	}
}
