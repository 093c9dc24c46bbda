package state

import (
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Filter returns the names whose lowercase form contains the lowercase
// query, or every name for an empty query. The result is a new slice sorted
// by plain byte order, so "Zeta" sorts before "alpha" even though matching
// ignores case.
func Filter(names []string, query string) []string {
	result := make([]string, 0, len(names))
	if query == "" {
		result = append(result, names...)
	} else {
		needle := foldName(query)
		for _, name := range names {
			if strings.Contains(foldName(name), needle) {
				result = append(result, name)
			}
		}
	}
	slices.SortStableFunc(result, strings.Compare)
	return result
}

// foldName composes the name first so decomposed names from macOS volumes
// match composed keyboard input.
func foldName(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}
