package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/bf/internal/state"
)

// Translate converts a tcell event into an Action for the given mode.
// It returns nil for events the navigator ignores.
func Translate(ev tcell.Event, mode statepkg.Mode) statepkg.Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev, mode)
	case *tcell.EventResize:
		w, h := ev.Size()
		return statepkg.ResizeAction{Width: w, Height: h}
	default:
		return nil
	}
}

// translateKey handles keyboard input
func translateKey(ev *tcell.EventKey, mode statepkg.Mode) statepkg.Action {
	searching := mode.SearchActive()

	// Handle special keys first
	switch ev.Key() {
	case tcell.KeyEnter:
		return statepkg.ConfirmAction{}

	case tcell.KeyCtrlC:
		return statepkg.AbortAction{}

	case tcell.KeyCtrlZ:
		return statepkg.SuspendAction{}

	case tcell.KeyEscape:
		if searching {
			return statepkg.SearchCancelAction{}
		}
		return nil

	case tcell.KeyUp:
		return statepkg.MoveUpAction{}

	case tcell.KeyDown:
		return statepkg.MoveDownAction{}

	case tcell.KeyLeft:
		return statepkg.AscendAction{}

	case tcell.KeyRight, tcell.KeyTab:
		return statepkg.DescendAction{}

	case tcell.KeyHome:
		return statepkg.MoveToStartAction{}

	case tcell.KeyEnd:
		return statepkg.MoveToEndAction{}

	case tcell.KeyPgUp:
		return statepkg.PageUpAction{}

	case tcell.KeyPgDn:
		return statepkg.PageDownAction{}

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if searching {
			return statepkg.SearchBackspaceAction{}
		}
		return statepkg.BackspaceAscendAction{}

	case tcell.KeyRune:
		return translateRune(ev, searching)

	default:
		return nil
	}
}

func translateRune(ev *tcell.EventKey, searching bool) statepkg.Action {
	r := ev.Rune()
	mods := ev.Modifiers()

	if mods&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) != 0 {
		// Some terminals report Ctrl+H as a rune rather than a backspace key.
		if mods&tcell.ModCtrl != 0 && (r == 'h' || r == 'H') {
			if searching {
				return statepkg.SearchBackspaceAction{}
			}
			return statepkg.BackspaceAscendAction{}
		}
		return nil
	}
	if mods&tcell.ModShift != 0 {
		// Normalize shifted alphabetic runes to reflect user intent (Shift+A => 'A')
		r = unicode.ToUpper(r)
	}

	if searching {
		if !unicode.IsPrint(r) {
			return nil
		}
		return statepkg.SearchCharAction{Char: r}
	}

	if r == '/' {
		return statepkg.SearchStartAction{}
	}
	return nil
}
