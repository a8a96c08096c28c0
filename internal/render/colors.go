package render

import "github.com/charmbracelet/lipgloss"

// Color is a terminal color request, resolved to an SGR/ANSI escape by
// the diff emitter via lipgloss, the same library the teacher's
// internal/ui/renderer.go uses for styled output.
type Color = lipgloss.Color

// Theme names the small set of foreground/background pairs the render
// pipeline needs outside of syntax/search highlighting: the editor's
// base text color and the color used to paint a search match.
type Theme struct {
	EditorFg    Color
	EditorBg    Color
	SearchFg    Color
	SearchBg    Color
	GutterFg    Color
	StatusFg    Color
	StatusBg    Color
	BorderColor Color
}

// DefaultTheme mirrors the "default" entry `internal/config`'s Theme
// setting selects; other named themes are a config-layer concern, not
// this package's.
func DefaultTheme() Theme {
	return Theme{
		EditorFg:    Color("252"),
		EditorBg:    Color(""),
		SearchFg:    Color("0"),
		SearchBg:    Color("11"),
		GutterFg:    Color("8"),
		StatusFg:    Color("0"),
		StatusBg:    Color("15"),
		BorderColor: Color("12"),
	}
}
