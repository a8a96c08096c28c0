package editor

import (
	"time"

	"testing"

	"github.com/ehrlich-b/wtedit/internal/config"
	"github.com/ehrlich-b/wtedit/internal/interfaces"
	"github.com/ehrlich-b/wtedit/internal/keymap"
)

// fakeTerminal satisfies terminal.Terminal with no-ops, so editor-level
// tests can construct a State without a real TTY.
type fakeTerminal struct{}

func (fakeTerminal) Init() error                    { return nil }
func (fakeTerminal) Deinit() error                  { return nil }
func (fakeTerminal) Poll(time.Duration) bool        { return false }
func (fakeTerminal) ReadKey() (keymap.Key, error)   { return keymap.Key{}, nil }
func (fakeTerminal) Write([]byte) error             { return nil }
func (fakeTerminal) Size() (rows, cols int)         { return 24, 80 }
func (fakeTerminal) ClearScreen() error             { return nil }
func (fakeTerminal) MoveCursor(row, col int) error  { return nil }
func (fakeTerminal) HideCursor() error              { return nil }
func (fakeTerminal) ShowCursor() error              { return nil }
func (fakeTerminal) ClearToEndOfLine() error        { return nil }
func (fakeTerminal) SetForeground(code string) error { return nil }
func (fakeTerminal) SetBackground(code string) error { return nil }
func (fakeTerminal) ResetColor() error               { return nil }

func newTestState() *State {
	return NewState(interfaces.NewOSFileSystem(), config.NewManager(), fakeTerminal{}, 24, 80)
}

func TestApplyNormalCommandDeleteCharUndoRedo(t *testing.T) {
	s := newTestState()
	doc := s.ActiveDocument()
	doc.Reload([]byte("abc"))

	ApplyNormalCommand(s, "delete_char", 1, []keymap.Key{keymap.Char('x')})
	if got := doc.Buffer.Text(0, doc.Buffer.Len()); got != "bc" {
		t.Fatalf("after delete_char buffer = %q, want %q", got, "bc")
	}

	ApplyNormalCommand(s, "undo", 1, nil)
	if got := doc.Buffer.Text(0, doc.Buffer.Len()); got != "abc" {
		t.Fatalf("after undo buffer = %q, want %q", got, "abc")
	}

	ApplyNormalCommand(s, "redo", 1, nil)
	if got := doc.Buffer.Text(0, doc.Buffer.Len()); got != "bc" {
		t.Fatalf("after redo buffer = %q, want %q", got, "bc")
	}
}

func TestApplyNormalCommandDeleteLine(t *testing.T) {
	s := newTestState()
	doc := s.ActiveDocument()
	doc.Reload([]byte("one\ntwo\nthree\n"))

	ApplyNormalCommand(s, "move_down", 1, []keymap.Key{keymap.Char('j')})
	ApplyNormalCommand(s, "delete_line", 1, []keymap.Key{keymap.Char('d'), keymap.Char('d')})

	if got := doc.Buffer.Text(0, doc.Buffer.Len()); got != "one\nthree\n" {
		t.Fatalf("after delete_line buffer = %q, want %q", got, "one\nthree\n")
	}
}

func TestApplyNormalCommandEnterInsertSwitchesMode(t *testing.T) {
	s := newTestState()
	ApplyNormalCommand(s, "enter_insert", 1, []keymap.Key{keymap.Char('i')})
	if s.Mode != keymap.Insert {
		t.Fatalf("Mode = %v, want Insert", s.Mode)
	}
}

func TestApplyNormalCommandQuit(t *testing.T) {
	s := newTestState()
	ApplyNormalCommand(s, "quit", 1, []keymap.Key{keymap.Char('q'), keymap.Char('q')})
	if !s.ShouldQuit {
		t.Fatal("ShouldQuit = false, want true after quit command")
	}
}

func TestDotRepeatReplaysDeleteChar(t *testing.T) {
	s := newTestState()
	doc := s.ActiveDocument()
	doc.Reload([]byte("abcdef"))

	keys := []keymap.Key{keymap.Char('x')}
	ApplyNormalCommand(s, "delete_char", 1, keys)
	if got := doc.Buffer.Text(0, doc.Buffer.Len()); got != "bcdef" {
		t.Fatalf("buffer = %q, want %q", got, "bcdef")
	}

	ApplyNormalCommand(s, "dot_repeat", 1, nil)
	if got := doc.Buffer.Text(0, doc.Buffer.Len()); got != "cdef" {
		t.Fatalf("after dot_repeat buffer = %q, want %q", got, "cdef")
	}
}

func TestEnterPromptSetsModeAndPrompt(t *testing.T) {
	s := newTestState()
	ApplyNormalCommand(s, "enter_command_mode", 1, []keymap.Key{keymap.Char(':')})
	if s.Mode != keymap.Command {
		t.Fatalf("Mode = %v, want Command", s.Mode)
	}
	if s.Prompt == nil {
		t.Fatal("Prompt is nil after entering command mode")
	}
}
