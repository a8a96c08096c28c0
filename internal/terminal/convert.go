package terminal

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ehrlich-b/wtedit/internal/keymap"
)

// convertKey translates bubbletea's native key representation into
// the editor's own keymap.Key, the same adaptation role the teacher's
// internal/ui/model.go performs ad hoc inline on every tea.KeyMsg it
// receives, pulled out here into one table-driven function.
func convertKey(msg tea.KeyMsg) keymap.Key {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return keymap.Char(msg.Runes[0])
		}
		if len(msg.Runes) > 0 {
			return keymap.Char(msg.Runes[0])
		}
	case tea.KeySpace:
		return keymap.Char(' ')
	case tea.KeyUp:
		return keymap.Special(keymap.KeyArrowUp)
	case tea.KeyDown:
		return keymap.Special(keymap.KeyArrowDown)
	case tea.KeyLeft:
		return keymap.Special(keymap.KeyArrowLeft)
	case tea.KeyRight:
		return keymap.Special(keymap.KeyArrowRight)
	case tea.KeyCtrlUp:
		return keymap.Special(keymap.KeyCtrlArrowUp)
	case tea.KeyCtrlDown:
		return keymap.Special(keymap.KeyCtrlArrowDown)
	case tea.KeyCtrlLeft:
		return keymap.Special(keymap.KeyCtrlArrowLeft)
	case tea.KeyCtrlRight:
		return keymap.Special(keymap.KeyCtrlArrowRight)
	case tea.KeyHome:
		return keymap.Special(keymap.KeyHome)
	case tea.KeyEnd:
		return keymap.Special(keymap.KeyEnd)
	case tea.KeyPgUp:
		return keymap.Special(keymap.KeyPageUp)
	case tea.KeyPgDown:
		return keymap.Special(keymap.KeyPageDown)
	case tea.KeyBackspace:
		return keymap.Special(keymap.KeyBackspace)
	case tea.KeyDelete:
		return keymap.Special(keymap.KeyDelete)
	case tea.KeyEnter:
		return keymap.Special(keymap.KeyEnter)
	case tea.KeyEscape:
		return keymap.Special(keymap.KeyEscape)
	case tea.KeyTab:
		return keymap.Special(keymap.KeyTab)
	}

	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		base := byte('a' + int(msg.Type-tea.KeyCtrlA))
		return keymap.Ctrl(base)
	}
	if msg.Type == tea.KeyCtrlCloseBracket {
		return keymap.Ctrl(']')
	}

	// Anything bubbletea didn't decode into a case above (rare control
	// sequences, unmapped function keys) degrades to a no-op char so
	// the dispatcher sees something rather than blocking forever.
	return keymap.Char(0)
}
