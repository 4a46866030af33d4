//go:build !linux

package sandbox

// Restrict validates opts and reports that Landlock is unavailable.
func Restrict(opts ...Option) error {
	if _, err := newConfig(opts); err != nil {
		return err
	}

	return ErrUnsupportedPlatform
}
