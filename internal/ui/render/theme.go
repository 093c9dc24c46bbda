package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	HeaderBg    tcell.Color
	HeaderFg    tcell.Color
	SearchFg    tcell.Color
	CursorBg    tcell.Color
	CursorFg    tcell.Color
	DirectoryFg tcell.Color
	HiddenFg    tcell.Color
	FooterBg    tcell.Color
	FooterFg    tcell.Color
	CounterFg   tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		HeaderBg:    tcell.ColorDefault,
		HeaderFg:    tcell.ColorDefault,
		SearchFg:    tcell.ColorDefault,
		CursorBg:    tcell.Color33,
		CursorFg:    tcell.ColorWhite,
		DirectoryFg: tcell.Color33,
		HiddenFg:    tcell.ColorLightSlateGray,
		FooterBg:    tcell.ColorDefault,
		FooterFg:    tcell.ColorDefault,
		CounterFg:   tcell.Color44,
	}
}
