package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type MoveUpAction struct{}
type MoveDownAction struct{}
type MoveToStartAction struct{}
type MoveToEndAction struct{}
type PageUpAction struct{}
type PageDownAction struct{}
type AscendAction struct{}
type BackspaceAscendAction struct{}
type DescendAction struct{}

// ===== SEARCH ACTIONS =====

type SearchStartAction struct{}
type SearchCharAction struct {
	Char rune
}
type SearchBackspaceAction struct{}
type SearchCancelAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

// ===== APPLICATION ACTIONS =====

type ConfirmAction struct{} // Enter - hand the current directory to the shell
type AbortAction struct{}   // Ctrl+C - leave without handing anything off
type SuspendAction struct{} // Ctrl+Z - stop the process, handled by the app
