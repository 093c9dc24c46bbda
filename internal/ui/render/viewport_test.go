package render

import (
	"fmt"
	"testing"

	statepkg "github.com/kk-code-lab/bf/internal/state"
)

func TestScrollOffset(t *testing.T) {
	tests := []struct {
		selected, rows, want int
	}{
		{0, 10, 0},
		{9, 10, 0},
		{10, 10, 1},
		{25, 10, 16},
		{5, 0, 0},
		{0, 1, 0},
		{3, 1, 3},
	}
	for _, tt := range tests {
		if got := ScrollOffset(tt.selected, tt.rows); got != tt.want {
			t.Errorf("ScrollOffset(%d, %d) = %d, want %d", tt.selected, tt.rows, got, tt.want)
		}
	}
}

func TestComputeViewportKeepsSelectionVisible(t *testing.T) {
	for n := 0; n <= 25; n++ {
		entries := make([]string, n)
		for i := range entries {
			entries[i] = fmt.Sprintf("d%d", i)
		}
		for height := 0; height <= 14; height++ {
			for _, mode := range []statepkg.Mode{statepkg.Browsing(), statepkg.Searching("")} {
				for sel := 0; sel < max(n, 1); sel++ {
					vp := ComputeViewport(entries, sel, mode, 40, height)
					checkViewport(t, vp, n, sel)
				}
			}
		}
	}
}

func checkViewport(t *testing.T, vp Viewport, n, sel int) {
	t.Helper()
	if vp.VisibleRows < 0 {
		t.Fatalf("negative visible rows: %+v", vp)
	}
	if len(vp.Rows) > vp.VisibleRows {
		t.Fatalf("more rows than space: %d > %d", len(vp.Rows), vp.VisibleRows)
	}
	if n == 0 || vp.VisibleRows == 0 {
		if vp.ScrollOffset != 0 || len(vp.Rows) != 0 {
			t.Fatalf("nothing to draw but got offset=%d rows=%d", vp.ScrollOffset, len(vp.Rows))
		}
		return
	}

	off, rows := vp.ScrollOffset, vp.VisibleRows
	if sel < rows && off != 0 {
		t.Fatalf("n=%d sel=%d rows=%d: offset %d, want 0", n, sel, rows, off)
	}
	if off > sel || sel > off+rows-1 {
		t.Fatalf("n=%d sel=%d rows=%d: selection outside window at offset %d", n, sel, rows, off)
	}

	selectedRows := 0
	for i, row := range vp.Rows {
		if row.Index != off+i || row.Index >= n {
			t.Fatalf("row %d has index %d (offset %d, n %d)", i, row.Index, off, n)
		}
		if row.Selected {
			selectedRows++
			if row.Index != sel {
				t.Fatalf("wrong row selected: %d, want %d", row.Index, sel)
			}
		}
	}
	if selectedRows != 1 {
		t.Fatalf("expected exactly one selected row, got %d", selectedRows)
	}
}

func TestComputeViewportListStart(t *testing.T) {
	browse := ComputeViewport([]string{"a"}, 0, statepkg.Browsing(), 20, 10)
	if browse.ListStartY != 1 || browse.VisibleRows != 8 {
		t.Fatalf("browsing viewport: %+v", browse)
	}

	search := ComputeViewport([]string{"a"}, 0, statepkg.Searching("a"), 20, 10)
	if search.ListStartY != 2 || search.VisibleRows != 7 {
		t.Fatalf("search viewport: %+v", search)
	}

	negative := ComputeViewport([]string{"a"}, 0, statepkg.Browsing(), -5, -5)
	if negative.VisibleCols != 0 || negative.VisibleRows != 0 {
		t.Fatalf("negative dimensions should clamp: %+v", negative)
	}
}
