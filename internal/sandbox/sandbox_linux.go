//go:build linux

package sandbox

import (
	"fmt"
	"os"

	"github.com/landlock-lsm/go-landlock/landlock"
)

// Restrict enforces the configured rules on the current process. Every
// filesystem access not granted by an option is denied afterwards.
func Restrict(opts ...Option) error {
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}

	ll := landlock.V5
	if cfg.bestEffort {
		ll = ll.BestEffort()
	}

	rules := make([]landlock.Rule, 0, len(cfg.readOnly))
	for _, p := range cfg.readOnly {
		info, err := os.Stat(p)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidOption, err)
		}

		if info.IsDir() {
			rules = append(rules, landlock.RODirs(p))
		} else {
			rules = append(rules, landlock.ROFiles(p))
		}
	}

	if err := ll.RestrictPaths(rules...); err != nil {
		return fmt.Errorf("landlock restrict paths failed: %w", err)
	}

	return nil
}
