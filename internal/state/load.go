package state

import (
	"path/filepath"
	"time"

	fsutil "github.com/kk-code-lab/bf/internal/fs"
	cache "github.com/patrickmn/go-cache"
)

// listingTTL bounds how long a search session keeps filtering a stale
// listing before the directory is read again.
const listingTTL = 30 * time.Second

func newListingCache() *cache.Cache {
	// No janitor: expired entries are skipped by Get and overwritten on the
	// next read, so nothing runs in the background.
	return cache.New(listingTTL, 0)
}

// LoadDirectory reads path and makes it the current directory with search
// cleared and the first entry selected. State is untouched on error.
func (r *StateReducer) LoadDirectory(state *BrowseState, path string) error {
	names, err := r.readDirectory(path)
	if err != nil {
		return err
	}

	previous := state.CurrentPath
	state.CurrentPath = path
	state.Mode = Browsing()
	state.Entries = Filter(names, "")
	state.SelectedIndex = 0

	if previous != "" && previous != path {
		r.listings.Delete(previous)
	}
	return nil
}

// readDirectory always hits the lister and refreshes the cached listing.
func (r *StateReducer) readDirectory(path string) ([]string, error) {
	raw, err := r.lister.ListDirs(path)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(raw))
	for _, name := range raw {
		if r.hideHidden && fsutil.IsHidden(filepath.Join(path, name), name) {
			continue
		}
		names = append(names, name)
	}

	r.listings.Set(path, names, cache.DefaultExpiration)
	return names, nil
}

// cachedListing serves query edits without touching the filesystem.
func (r *StateReducer) cachedListing(path string) ([]string, error) {
	if cached, ok := r.listings.Get(path); ok {
		if names, ok := cached.([]string); ok {
			return names, nil
		}
	}
	return r.readDirectory(path)
}

// applyMode re-filters the current listing under mode. Entries, mode and
// selection change together or not at all.
func (r *StateReducer) applyMode(state *BrowseState, mode Mode) error {
	names, err := r.cachedListing(state.CurrentPath)
	if err != nil {
		return err
	}

	state.Mode = mode
	state.Entries = Filter(names, mode.Query())
	state.SelectedIndex = 0
	return nil
}
