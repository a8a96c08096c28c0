package component

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ehrlich-b/wtedit/internal/job"
	"github.com/ehrlich-b/wtedit/internal/keymap"
	"github.com/ehrlich-b/wtedit/internal/render"
)

// InputLine is the Command/Search prompt overlay: a single-line text
// box backed by bubbles/textarea, grounded on the teacher's
// internal/ui/input.go InputModel but narrowed from a multi-line chat
// box (height 3, newline-on-ctrl+enter) to the one-line, no-newline
// shape an ex/search prompt needs.
type InputLine struct {
	ta     textarea.Model
	prefix rune // ':' for command mode, '/' or '?' for search
}

// NewInputLine returns a prompt overlay with the given leading prefix
// character, shown but not editable (e.g. ":" before the typed text).
func NewInputLine(prefix rune) *InputLine {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.SetHeight(1)
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.Focus()
	return &InputLine{ta: ta, prefix: prefix}
}

// Reset clears the typed text, e.g. when a new command/search starts.
func (l *InputLine) Reset() { l.ta.Reset() }

// Value returns the typed text without the leading prefix.
func (l *InputLine) Value() string { return l.ta.Value() }

func (l *InputLine) SetWidth(width int) { l.ta.SetWidth(width) }

// HandleInput feeds a key to the textarea and reports Enter/Escape as
// consumed-with-action so the editor can decide what "submit" or
// "cancel" means for the active mode (Command vs. Search).
func (l *InputLine) HandleInput(key keymap.Key) InputResult {
	switch key.Kind {
	case keymap.KeyEnter:
		return InputResult{Kind: ActionResult, Action: SubmitAction{Text: l.Value()}}
	case keymap.KeyEscape:
		return InputResult{Kind: ActionResult, Action: CancelAction{}}
	}

	msg, ok := keyToTeaMsg(key)
	if !ok {
		return InputResult{Kind: Ignored}
	}
	var cmd tea.Cmd
	l.ta, cmd = l.ta.Update(msg)
	_ = cmd // textarea.Blink isn't meaningful outside a real tea.Program loop
	return InputResult{Kind: Consumed}
}

// Render paints the prompt's prefix and current text into row 0 of
// its assigned layer (the floating-window layer is always exactly one
// row tall for this overlay).
func (l *InputLine) Render(layer *render.Layer) {
	layer.Clear()
	text := string(l.prefix) + l.Value()
	layer.SetText(0, 0, text, "", "")
}

// CursorPosition places the cursor just past the typed text. This is
// a deliberate simplification from the teacher's full textarea cursor
// tracking: an ex/search prompt is typed linearly far more often than
// edited mid-line, so "cursor always at end of text" covers the
// common case without threading textarea's internal cursor column
// (not part of its exported API) through this overlay.
func (l *InputLine) CursorPosition() (row, col int, ok bool) {
	return 0, 1 + len([]rune(l.Value())), true
}

// HandleJobMessage is a no-op; the input line has no async work of
// its own to react to.
func (l *InputLine) HandleJobMessage(job.Message) EventResult {
	return EventResult{}
}

// SubmitAction and CancelAction are the Action payloads InputLine
// hands back to the editor on Enter/Escape.
type SubmitAction struct{ Text string }
type CancelAction struct{}

// keyToTeaMsg converts a keymap.Key back into the tea.KeyMsg shape
// textarea.Update expects, the mirror image of
// internal/terminal/convert.go's tea.KeyMsg → keymap.Key conversion.
// Kept local to this file rather than shared, since only an overlay
// backed by a bubbles widget needs to go in this direction.
func keyToTeaMsg(k keymap.Key) (tea.KeyMsg, bool) {
	switch k.Kind {
	case keymap.KeyChar:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{k.Char}}, true
	case keymap.KeyBackspace:
		return tea.KeyMsg{Type: tea.KeyBackspace}, true
	case keymap.KeyDelete:
		return tea.KeyMsg{Type: tea.KeyDelete}, true
	case keymap.KeyArrowLeft:
		return tea.KeyMsg{Type: tea.KeyLeft}, true
	case keymap.KeyArrowRight:
		return tea.KeyMsg{Type: tea.KeyRight}, true
	case keymap.KeyHome:
		return tea.KeyMsg{Type: tea.KeyHome}, true
	case keymap.KeyEnd:
		return tea.KeyMsg{Type: tea.KeyEnd}, true
	case keymap.KeyCtrl:
		if base := teaCtrlKeyType(k.Ctrl); base != 0 {
			return tea.KeyMsg{Type: base}, true
		}
	}
	return tea.KeyMsg{}, false
}

func teaCtrlKeyType(base byte) tea.KeyType {
	if base >= 'a' && base <= 'z' {
		return tea.KeyCtrlA + tea.KeyType(base-'a')
	}
	return 0
}
