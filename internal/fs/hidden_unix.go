//go:build !windows

package fs

// IsHidden reports dot-prefixed names.
func IsHidden(_ string, name string) bool {
	return len(name) > 0 && name[0] == '.'
}
