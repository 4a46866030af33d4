// Package sandbox confines the current process to read-only access of a
// fixed set of paths using Landlock.
//
// Restrictions apply to the whole process and all goroutines and cannot be
// lifted once enforced, so callers restrict only after every file they need
// has been named. Landlock is Linux-only; elsewhere [Restrict] returns
// [ErrUnsupportedPlatform].
package sandbox
