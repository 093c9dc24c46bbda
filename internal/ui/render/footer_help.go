package render

import (
	"fmt"
	"strings"

	statepkg "github.com/kk-code-lab/bf/internal/state"
)

// buildFooterHelpText returns the contextual footer hint string with leading/trailing padding.
func buildFooterHelpText(mode statepkg.Mode) string {
	parts := buildFooterHelpSegments(mode)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments assembles mode-dependent key hints for the footer.
func buildFooterHelpSegments(mode statepkg.Mode) []string {
	if mode.SearchActive() {
		return []string{
			"type: search",
			"Esc: end search",
			"⌫: edit query",
			"→: enter",
			"↵: cd here",
		}
	}
	return []string{
		"↑↓: select",
		"→/Tab: enter",
		"←/⌫: up",
		"/: search",
		"↵: cd here",
		"^C: quit",
	}
}

// formatCounter renders the 1-based position of the selection.
func formatCounter(selected, total int) string {
	if total == 0 {
		return " 0/0 "
	}
	return fmt.Sprintf(" %d/%d ", selected+1, total)
}
