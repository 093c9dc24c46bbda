//go:build !windows

package fs

// ShouldHideFromListing has nothing to hide outside Windows.
func ShouldHideFromListing(_, _ string) bool {
	return false
}
