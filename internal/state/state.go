package state

// Mode is the browser's input mode: plain browsing, or searching with a
// live query. A query only exists while searching.
type Mode struct {
	searching bool
	query     string
}

// Browsing returns the default navigation mode.
func Browsing() Mode {
	return Mode{}
}

// Searching returns search mode with the given query.
func Searching(query string) Mode {
	return Mode{searching: true, query: query}
}

// SearchActive reports whether typed characters edit the query.
func (m Mode) SearchActive() bool {
	return m.searching
}

// Query returns the search query; always empty while browsing.
func (m Mode) Query() string {
	return m.query
}

func (m Mode) String() string {
	if !m.searching {
		return "browsing"
	}
	return "searching(" + m.query + ")"
}

// BrowseState is the single source of truth for the navigator.
type BrowseState struct {
	// Navigation & filesystem
	CurrentPath string
	Entries     []string // Visible subdirectories under the active filter (always sorted)

	// Selection
	SelectedIndex int

	// Search
	Mode Mode

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	// Loop termination
	Done    bool // Confirmed: CurrentPath is the result
	Aborted bool // Cancelled: nothing is handed off
}

// SelectedEntry returns the highlighted entry name, or "" when the listing
// is empty.
func (s *BrowseState) SelectedEntry() string {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Entries) {
		return ""
	}
	return s.Entries[s.SelectedIndex]
}

// Finished reports whether the event loop should stop.
func (s *BrowseState) Finished() bool {
	return s.Done || s.Aborted
}

func (s *BrowseState) clampSelection() {
	if len(s.Entries) == 0 || s.SelectedIndex < 0 {
		s.SelectedIndex = 0
		return
	}
	if s.SelectedIndex >= len(s.Entries) {
		s.SelectedIndex = len(s.Entries) - 1
	}
}

// Screen rows used by everything except the entry list.
const (
	HeaderRows = 1
	SearchRows = 1
	FooterRows = 1
)

// ListRows returns how many entry rows fit on a screen of the given height
// in the given mode. Never negative.
func ListRows(mode Mode, height int) int {
	rows := height - HeaderRows - FooterRows
	if mode.SearchActive() {
		rows -= SearchRows
	}
	if rows < 0 {
		return 0
	}
	return rows
}
