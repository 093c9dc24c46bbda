//go:build windows

package fs

import (
	"fmt"
	"os"
)

// CanEnter opens the directory once; Windows has no access(2) equivalent
// that reflects ACLs.
func (OSLister) CanEnter(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot enter %s: %w: %w", path, ErrAccessDenied, err)
	}
	_ = f.Close()
	return nil
}
