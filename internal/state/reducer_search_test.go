package state

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ===== SEARCH TESTS =====

func TestSearchStartKeepsEntries(t *testing.T) {
	reducer := NewStateReducer(newFakeLister(homeTree()))
	state := loadState(t, reducer, "/home/user")
	state.SelectedIndex = 1

	reduce(t, reducer, state, SearchStartAction{})

	if state.Mode != Searching("") {
		t.Fatalf("expected empty search, got %v", state.Mode)
	}
	if state.SelectedIndex != 1 {
		t.Fatalf("entering search should not move selection, got %d", state.SelectedIndex)
	}
	if len(state.Entries) != 3 {
		t.Fatalf("expected all entries, got %v", state.Entries)
	}
}

func TestSearchStartWhileSearchingKeepsQuery(t *testing.T) {
	reducer := NewStateReducer(newFakeLister(homeTree()))
	state := loadState(t, reducer, "/home/user")
	reduce(t, reducer, state, SearchStartAction{})
	typeQuery(t, reducer, state, "do")

	reduce(t, reducer, state, SearchStartAction{})

	if state.Mode != Searching("do") {
		t.Fatalf("expected query kept, got %v", state.Mode)
	}
}

func TestSearchCharsIgnoredWhileBrowsing(t *testing.T) {
	reducer := NewStateReducer(newFakeLister(homeTree()))
	state := loadState(t, reducer, "/home/user")

	reduce(t, reducer, state, SearchCharAction{Char: 'x'}, SearchBackspaceAction{}, SearchCancelAction{})

	if state.Mode != Browsing() {
		t.Fatalf("expected browsing, got %v", state.Mode)
	}
	if len(state.Entries) != 3 {
		t.Fatalf("expected all entries, got %v", state.Entries)
	}
}

func TestSearchNarrowsAndResetsSelection(t *testing.T) {
	reducer := NewStateReducer(newFakeLister(homeTree()))
	state := loadState(t, reducer, "/home/user")
	reduce(t, reducer, state, SearchStartAction{})

	tests := []struct {
		action Action
		query  string
		want   []string
	}{
		{SearchCharAction{Char: 'o'}, "o", []string{"Documents", "Downloads"}},
		{SearchCharAction{Char: 'w'}, "ow", []string{"Downloads"}},
		{SearchCharAction{Char: 'z'}, "owz", []string{}},
		{SearchBackspaceAction{}, "ow", []string{"Downloads"}},
		{SearchBackspaceAction{}, "o", []string{"Documents", "Downloads"}},
		{SearchBackspaceAction{}, "", []string{"Documents", "Downloads", "dev"}},
		{SearchBackspaceAction{}, "", []string{"Documents", "Downloads", "dev"}},
	}
	for i, tt := range tests {
		state.SelectedIndex = len(state.Entries) - 1
		if state.SelectedIndex < 0 {
			state.SelectedIndex = 0
		}
		reduce(t, reducer, state, tt.action)

		if state.Mode != Searching(tt.query) {
			t.Fatalf("step %d: mode=%v, want query %q", i, state.Mode, tt.query)
		}
		if diff := cmp.Diff(tt.want, state.Entries); diff != "" {
			t.Fatalf("step %d: entries mismatch (-want +got):\n%s", i, diff)
		}
		if state.SelectedIndex != 0 {
			t.Fatalf("step %d: expected selection reset, got %d", i, state.SelectedIndex)
		}
	}
}

func TestSearchIgnoresControlRunes(t *testing.T) {
	reducer := NewStateReducer(newFakeLister(homeTree()))
	state := loadState(t, reducer, "/home/user")
	reduce(t, reducer, state, SearchStartAction{}, SearchCharAction{Char: '\x1b'}, SearchCharAction{Char: '\t'})

	if state.Mode != Searching("") {
		t.Fatalf("control runes should not reach the query, got %v", state.Mode)
	}
}

func TestSearchBackspaceRemovesWholeRune(t *testing.T) {
	tree := map[string][]string{"/music": {"Beyoncé", "Björk", "Bach"}}
	reducer := NewStateReducer(newFakeLister(tree))
	state := loadState(t, reducer, "/music")
	reduce(t, reducer, state, SearchStartAction{})
	typeQuery(t, reducer, state, "jö")

	if diff := cmp.Diff([]string{"Björk"}, state.Entries); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}

	reduce(t, reducer, state, SearchBackspaceAction{})
	if state.Mode != Searching("j") {
		t.Fatalf("expected query %q, got %v", "j", state.Mode)
	}
}

func TestSearchSlashIsLiteralWhileSearching(t *testing.T) {
	reducer := NewStateReducer(newFakeLister(homeTree()))
	state := loadState(t, reducer, "/home/user")
	reduce(t, reducer, state, SearchStartAction{}, SearchCharAction{Char: '/'})

	if state.Mode != Searching("/") {
		t.Fatalf("expected literal slash in query, got %v", state.Mode)
	}
	if len(state.Entries) != 0 {
		t.Fatalf("no name contains a slash, got %v", state.Entries)
	}
}

func TestSearchCancelRestoresFullListing(t *testing.T) {
	reducer := NewStateReducer(newFakeLister(homeTree()))
	state := loadState(t, reducer, "/home/user")
	reduce(t, reducer, state, SearchStartAction{})
	typeQuery(t, reducer, state, "dev")
	reduce(t, reducer, state, SearchCancelAction{})

	if state.Mode != Browsing() {
		t.Fatalf("expected browsing, got %v", state.Mode)
	}
	if diff := cmp.Diff([]string{"Documents", "Downloads", "dev"}, state.Entries); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
	if state.SelectedIndex != 0 {
		t.Fatalf("expected selection reset, got %d", state.SelectedIndex)
	}
}

func TestQueryEditsReuseCachedListing(t *testing.T) {
	lister := newFakeLister(homeTree())
	reducer := NewStateReducer(lister)
	state := loadState(t, reducer, "/home/user")
	reduce(t, reducer, state, SearchStartAction{})
	typeQuery(t, reducer, state, "down")
	reduce(t, reducer, state, SearchBackspaceAction{}, SearchCancelAction{})

	if calls := lister.listCalls[p("/home/user")]; calls != 1 {
		t.Fatalf("expected a single listing for query edits, got %d", calls)
	}
}

func TestConfirmWhileSearchingReturnsCurrentDirectory(t *testing.T) {
	reducer := NewStateReducer(newFakeLister(homeTree()))
	state := loadState(t, reducer, "/home/user")
	reduce(t, reducer, state, SearchStartAction{})
	typeQuery(t, reducer, state, "dev")
	reduce(t, reducer, state, ConfirmAction{})

	if !state.Done {
		t.Fatal("expected confirmation")
	}
	if state.CurrentPath != p("/home/user") {
		t.Fatalf("confirm must not descend, got %s", state.CurrentPath)
	}
}
