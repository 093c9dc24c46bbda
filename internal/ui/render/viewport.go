package render

import statepkg "github.com/kk-code-lab/bf/internal/state"

// Viewport is the visible window onto the listing for one frame.
type Viewport struct {
	ScrollOffset int // index of the first entry drawn
	VisibleRows  int // list rows between the header block and the footer
	VisibleCols  int
	ListStartY   int // screen row of the first list row
	Rows         []Row
}

// Row is one listing entry placed on screen.
type Row struct {
	Index    int
	Name     string
	Selected bool
}

// ScrollOffset returns the smallest offset that keeps selected on screen
// when the list is pushed forward from the top. It snaps back to 0 once
// the selection fits above the fold again.
func ScrollOffset(selected, visibleRows int) int {
	if visibleRows <= 0 || selected < visibleRows {
		return 0
	}
	return selected - visibleRows + 1
}

// ComputeViewport lays out entries for a width x height screen.
func ComputeViewport(entries []string, selected int, mode statepkg.Mode, width, height int) Viewport {
	vp := Viewport{
		VisibleRows: statepkg.ListRows(mode, height),
		VisibleCols: max(width, 0),
		ListStartY:  statepkg.HeaderRows,
	}
	if mode.SearchActive() {
		vp.ListStartY += statepkg.SearchRows
	}

	if len(entries) == 0 || vp.VisibleRows == 0 {
		return vp
	}

	selected = min(max(selected, 0), len(entries)-1)
	vp.ScrollOffset = ScrollOffset(selected, vp.VisibleRows)

	end := min(len(entries), vp.ScrollOffset+vp.VisibleRows)
	vp.Rows = make([]Row, 0, end-vp.ScrollOffset)
	for idx := vp.ScrollOffset; idx < end; idx++ {
		vp.Rows = append(vp.Rows, Row{
			Index:    idx,
			Name:     entries[idx],
			Selected: idx == selected,
		})
	}
	return vp
}
