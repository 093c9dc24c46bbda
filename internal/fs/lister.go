package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrAccessDenied marks a directory the process may not list or enter.
var ErrAccessDenied = errors.New("access denied")

// Lister supplies directory listings to the navigator.
type Lister interface {
	// ListDirs returns the names of the subdirectories of path in no
	// particular order.
	ListDirs(path string) ([]string, error)
	// CanEnter reports whether path can be read and traversed.
	CanEnter(path string) error
}

// OSLister reads the local filesystem.
type OSLister struct{}

// ListDirs lists the subdirectories of path. Symlinks count when their
// target is a directory.
func (OSLister) ListDirs(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return nil, fmt.Errorf("cannot read directory %s: %w: %w", path, ErrAccessDenied, err)
		}
		return nil, fmt.Errorf("cannot read directory %s: %w", path, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		fullPath := filepath.Join(path, name)

		if ShouldHideFromListing(fullPath, name) {
			continue
		}

		isDir := e.IsDir()
		if e.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(fullPath); err == nil {
				isDir = info.IsDir()
			}
		}
		if !isDir {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
