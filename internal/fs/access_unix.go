//go:build !windows

package fs

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// CanEnter checks read and search permission the way access(2) sees it.
// Any failure, including a directory that vanished, means not enterable.
func (OSLister) CanEnter(path string) error {
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return fmt.Errorf("cannot enter %s: %w: %w", path, ErrAccessDenied, err)
	}
	return nil
}
