package state

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"testing"

	fsutil "github.com/kk-code-lab/bf/internal/fs"
)

// fakeLister serves an in-memory directory tree keyed by slash paths.
type fakeLister struct {
	dirs       map[string][]string
	denied     map[string]bool  // CanEnter refuses
	unreadable map[string]bool  // ListDirs refuses
	broken     map[string]error // ListDirs fails with an unexpected error
	listCalls  map[string]int
}

func newFakeLister(tree map[string][]string) *fakeLister {
	dirs := make(map[string][]string, len(tree))
	for path, names := range tree {
		dirs[p(path)] = names
	}
	return &fakeLister{
		dirs:       dirs,
		denied:     map[string]bool{},
		unreadable: map[string]bool{},
		broken:     map[string]error{},
		listCalls:  map[string]int{},
	}
}

func (f *fakeLister) ListDirs(path string) ([]string, error) {
	f.listCalls[path]++
	if err, ok := f.broken[path]; ok {
		return nil, err
	}
	if f.unreadable[path] {
		return nil, fmt.Errorf("cannot read directory %s: %w", path, fsutil.ErrAccessDenied)
	}
	names, ok := f.dirs[path]
	if !ok {
		return nil, fmt.Errorf("cannot read directory %s: %w", path, os.ErrNotExist)
	}
	return slices.Clone(names), nil
}

func (f *fakeLister) CanEnter(path string) error {
	if f.denied[path] {
		return fmt.Errorf("cannot enter %s: %w", path, fsutil.ErrAccessDenied)
	}
	if _, ok := f.dirs[path]; !ok && !f.unreadable[path] {
		return fmt.Errorf("cannot enter %s: %w", path, fsutil.ErrAccessDenied)
	}
	return nil
}

// p converts a slash path to the platform form used by filepath.
func p(path string) string {
	return filepath.FromSlash(path)
}

func homeTree() map[string][]string {
	return map[string][]string{
		"/":                    {"home", "etc"},
		"/home":                {"user"},
		"/home/user":           {"dev", "Downloads", "Documents"},
		"/home/user/dev":       {"bf", "tools"},
		"/home/user/Downloads": {},
		"/home/user/Documents": {"taxes"},
	}
}

func loadState(t *testing.T, reducer *StateReducer, path string) *BrowseState {
	t.Helper()
	state := &BrowseState{ScreenWidth: 80, ScreenHeight: 24}
	if err := reducer.LoadDirectory(state, p(path)); err != nil {
		t.Fatalf("LoadDirectory(%s): %v", path, err)
	}
	return state
}

func reduce(t *testing.T, reducer *StateReducer, state *BrowseState, actions ...Action) {
	t.Helper()
	for _, action := range actions {
		if _, err := reducer.Reduce(state, action); err != nil {
			t.Fatalf("Reduce(%T): %v", action, err)
		}
	}
}

func typeQuery(t *testing.T, reducer *StateReducer, state *BrowseState, query string) {
	t.Helper()
	for _, r := range query {
		reduce(t, reducer, state, SearchCharAction{Char: r})
	}
}
