package state

import (
	"log/slog"
	"path/filepath"
	"unicode"

	fsutil "github.com/kk-code-lab/bf/internal/fs"
	cache "github.com/patrickmn/go-cache"
)

// StateReducer applies actions to state
type StateReducer struct {
	lister     fsutil.Lister
	listings   *cache.Cache // path -> unfiltered subdirectory names
	hideHidden bool
	logger     *slog.Logger
}

// Option configures a StateReducer.
type Option func(*StateReducer)

// WithHideHidden drops hidden directories from every listing.
func WithHideHidden(hide bool) Option {
	return func(r *StateReducer) {
		r.hideHidden = hide
	}
}

// WithLogger routes reducer diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *StateReducer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewStateReducer creates a new reducer reading directories through lister.
func NewStateReducer(lister fsutil.Lister, opts ...Option) *StateReducer {
	r := &StateReducer{
		lister:   lister,
		listings: newListingCache(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reduce applies an action to state in place and returns it.
//
// An error wrapping fs.ErrAccessDenied means the directory could not be
// entered; state is left exactly as it was and the caller should alert the
// user and carry on. Any other error is a listing failure the navigator
// cannot recover from.
func (r *StateReducer) Reduce(state *BrowseState, action Action) (*BrowseState, error) {
	switch a := action.(type) {

	// ===== NAVIGATION =====

	case MoveDownAction:
		if len(state.Entries) == 0 {
			return state, nil
		}
		state.SelectedIndex = min(state.SelectedIndex+1, len(state.Entries)-1)
		return state, nil

	case MoveUpAction:
		if len(state.Entries) == 0 {
			return state, nil
		}
		state.SelectedIndex = max(state.SelectedIndex-1, 0)
		return state, nil

	case MoveToStartAction:
		state.SelectedIndex = 0
		return state, nil

	case MoveToEndAction:
		if len(state.Entries) > 0 {
			state.SelectedIndex = len(state.Entries) - 1
		}
		return state, nil

	case PageUpAction:
		state.SelectedIndex = max(state.SelectedIndex-pageSize(state), 0)
		state.clampSelection()
		return state, nil

	case PageDownAction:
		if len(state.Entries) == 0 {
			return state, nil
		}
		state.SelectedIndex = min(state.SelectedIndex+pageSize(state), len(state.Entries)-1)
		return state, nil

	case AscendAction:
		return state, r.ascend(state)

	case BackspaceAscendAction:
		if state.Mode.SearchActive() {
			return state, nil
		}
		return state, r.ascend(state)

	case DescendAction:
		entry := state.SelectedEntry()
		if entry == "" {
			return state, nil
		}

		target := filepath.Join(state.CurrentPath, entry)
		if err := r.lister.CanEnter(target); err != nil {
			r.logger.Debug("descent refused", "path", target, "err", err)
			return state, err
		}
		if err := r.LoadDirectory(state, target); err != nil {
			r.logger.Debug("descent failed", "path", target, "err", err)
			return state, err
		}
		r.logger.Debug("entered directory", "path", target, "entries", len(state.Entries))
		return state, nil

	// ===== SEARCH =====

	case SearchStartAction:
		if !state.Mode.SearchActive() {
			state.Mode = Searching("")
		}
		return state, nil

	case SearchCharAction:
		if !state.Mode.SearchActive() || !unicode.IsPrint(a.Char) {
			return state, nil
		}
		return state, r.applyMode(state, Searching(state.Mode.Query()+string(a.Char)))

	case SearchBackspaceAction:
		if !state.Mode.SearchActive() {
			return state, nil
		}
		runes := []rune(state.Mode.Query())
		if len(runes) > 0 {
			runes = runes[:len(runes)-1]
		}
		return state, r.applyMode(state, Searching(string(runes)))

	case SearchCancelAction:
		if !state.Mode.SearchActive() {
			return state, nil
		}
		return state, r.applyMode(state, Browsing())

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = max(a.Width, 0)
		state.ScreenHeight = max(a.Height, 0)
		return state, nil

	// ===== APPLICATION =====

	case ConfirmAction:
		state.Done = true
		r.logger.Info("directory confirmed", "path", state.CurrentPath)
		return state, nil

	case AbortAction:
		state.Aborted = true
		r.logger.Info("navigation aborted", "path", state.CurrentPath)
		return state, nil
	}

	return state, nil
}

// ascend moves to the parent directory. The root is its own parent, so at
// the root this only re-lists and resets.
func (r *StateReducer) ascend(state *BrowseState) error {
	parent := filepath.Dir(state.CurrentPath)
	if err := r.LoadDirectory(state, parent); err != nil {
		r.logger.Debug("ascent failed", "path", parent, "err", err)
		return err
	}
	r.logger.Debug("entered directory", "path", parent, "entries", len(state.Entries))
	return nil
}

func pageSize(state *BrowseState) int {
	return max(ListRows(state.Mode, state.ScreenHeight), 1)
}
