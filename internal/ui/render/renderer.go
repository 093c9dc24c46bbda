package render

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/bf/internal/state"
	textutil "github.com/kk-code-lab/bf/internal/textutil"
)

const (
	emptyDirText     = "(no subdirectories)"
	emptyMatchesText = "(no matches)"
)

// Renderer handles all UI rendering
type Renderer struct {
	screen           tcell.Screen
	theme            ColorTheme
	runeWidthCache   [128]int // ASCII cache (0-127)
	runeWidthCacheMu sync.RWMutex
	runeWidthWide    sync.Map // For non-ASCII runes
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.BrowseState) {
	r.screen.Clear()

	w, h := state.ScreenWidth, state.ScreenHeight
	if w <= 0 || h <= 0 {
		r.screen.Show()
		return
	}

	vp := ComputeViewport(state.Entries, state.SelectedIndex, state.Mode, w, h)

	r.drawHeader(state.CurrentPath, w)
	if state.Mode.SearchActive() && h > statepkg.HeaderRows {
		r.drawSearchLine(state.Mode.Query(), statepkg.HeaderRows, w)
	}
	r.drawList(state, vp)
	r.drawFooter(state, vp, h)

	r.screen.Show()
}

// drawHeader renders the current directory in bold on the top row.
func (r *Renderer) drawHeader(path string, w int) {
	headerStyle := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg).Bold(true)

	text := r.fitPath(textutil.SanitizeTerminalText(path), w)
	endX := r.drawTextLine(0, 0, w, text, headerStyle)
	r.fillLine(endX, 0, w, headerStyle)
}

// drawSearchLine renders "/query" followed by a block cursor.
func (r *Renderer) drawSearchLine(query string, y, w int) {
	lineStyle := tcell.StyleDefault.Foreground(r.theme.SearchFg)
	cursorStyle := tcell.StyleDefault.Background(r.theme.CursorBg).Foreground(r.theme.CursorFg)

	text := "/" + textutil.SanitizeTerminalText(query)
	// Keep the tail of a long query next to the cursor.
	text = r.fitPath(text, w-1)
	endX := r.drawTextLine(0, y, w, text, lineStyle)
	if endX < w {
		endX = r.drawStyledRune(endX, y, w, '█', cursorStyle)
	}
	r.fillLine(endX, y, w, lineStyle)
}

func (r *Renderer) drawList(state *statepkg.BrowseState, vp Viewport) {
	if vp.VisibleRows == 0 {
		return
	}

	if len(vp.Rows) == 0 {
		text := emptyDirText
		if state.Mode.Query() != "" {
			text = emptyMatchesText
		}
		dimStyle := tcell.StyleDefault.Dim(true)
		text = r.truncateTextToWidth(" "+text, vp.VisibleCols)
		r.drawTextLine(0, vp.ListStartY, vp.VisibleCols, text, dimStyle)
		return
	}

	baseStyle := tcell.StyleDefault.Foreground(r.theme.DirectoryFg)
	for i, row := range vp.Rows {
		y := vp.ListStartY + i

		rowStyle := baseStyle
		if strings.HasPrefix(row.Name, ".") {
			rowStyle = rowStyle.Foreground(r.theme.HiddenFg)
		}
		if row.Selected {
			rowStyle = tcell.StyleDefault.Reverse(true)
		}

		name := textutil.SanitizeTerminalText(row.Name)
		text := " " + r.truncateTextToWidth(name, vp.VisibleCols-1)
		endX := r.drawTextLine(0, y, vp.VisibleCols, text, rowStyle)
		if row.Selected {
			r.fillLine(endX, y, vp.VisibleCols, rowStyle)
		}
	}
}

// drawFooter renders key hints on the left and the position counter on the
// right of the last row. It yields to the header block on tiny screens.
func (r *Renderer) drawFooter(state *statepkg.BrowseState, vp Viewport, h int) {
	footerY := h - statepkg.FooterRows
	if footerY < vp.ListStartY {
		return
	}

	w := vp.VisibleCols
	footerStyle := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)
	counterStyle := footerStyle.Foreground(r.theme.CounterFg)

	counter := formatCounter(state.SelectedIndex, len(state.Entries))
	counterWidth := r.measureTextWidth(counter)
	helpWidth := max(w-counterWidth, 0)

	help := r.truncateTextToWidth(buildFooterHelpText(state.Mode), helpWidth)
	endX := r.drawTextLine(0, footerY, helpWidth, help, footerStyle)
	r.fillLine(endX, footerY, helpWidth, footerStyle)

	if counterWidth <= w {
		r.drawTextLine(w-counterWidth, footerY, counterWidth, counter, counterStyle)
	}
}
