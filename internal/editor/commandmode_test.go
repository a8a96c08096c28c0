package editor

import (
	"testing"

	"github.com/ehrlich-b/wtedit/internal/document"
	"github.com/ehrlich-b/wtedit/internal/keymap"
	"github.com/ehrlich-b/wtedit/internal/search"
	"github.com/ehrlich-b/wtedit/internal/undo"
)

func TestSubmitCommandUnknownReportsFailure(t *testing.T) {
	s := newTestState()
	submitCommand(s, "notacommand")

	if s.Notifications.Count() != 1 {
		t.Fatalf("Count() = %d, want 1 notification", s.Notifications.Count())
	}
}

func TestSubmitCommandQuitClosesOnlyBuffer(t *testing.T) {
	s := newTestState()
	submitCommand(s, "q")

	if !s.ShouldQuit {
		t.Fatalf("ShouldQuit = false after closing the only buffer, want true")
	}
}

func TestSubmitCommandQuitRefusedWhenDirty(t *testing.T) {
	s := newTestState()
	doc := s.ActiveDocument()
	rec := undo.Begin(doc.Buffer, "test")
	rec.Insert(0, "x")
	rec.Commit(doc.History)

	submitCommand(s, "q")

	if s.ShouldQuit {
		t.Fatalf("ShouldQuit = true for a dirty buffer without !, want false")
	}
	if s.Notifications.Count() != 1 {
		t.Fatalf("Count() = %d, want 1 notification about unsaved changes", s.Notifications.Count())
	}
}

func TestSubmitCommandQuitBangDiscardsChanges(t *testing.T) {
	s := newTestState()
	doc := s.ActiveDocument()
	rec := undo.Begin(doc.Buffer, "test")
	rec.Insert(0, "x")
	rec.Commit(doc.History)

	submitCommand(s, "q!")

	if !s.ShouldQuit {
		t.Fatalf("ShouldQuit = false after q! on the only buffer, want true")
	}
}

func TestSubmitCommandBnextCyclesActiveDocument(t *testing.T) {
	s := newTestState()
	s.AddDocument(document.New("second"))
	s.Active = 0

	submitCommand(s, "bnext")

	if s.Active != 1 {
		t.Fatalf("Active = %d, want 1", s.Active)
	}
}

func TestSubmitCommandUndoRedo(t *testing.T) {
	s := newTestState()
	doc := s.ActiveDocument()
	rec := undo.Begin(doc.Buffer, "test")
	rec.Insert(0, "x")
	rec.Commit(doc.History)

	submitCommand(s, "undo")
	if got := doc.Buffer.Text(0, doc.Buffer.Len()); got != "" {
		t.Fatalf("after undo, Text() = %q, want empty", got)
	}

	submitCommand(s, "redo")
	if got := doc.Buffer.Text(0, doc.Buffer.Len()); got != "x" {
		t.Fatalf("after redo, Text() = %q, want %q", got, "x")
	}
}

func TestSubmitCommandRedrawSetsNeedsClear(t *testing.T) {
	s := newTestState()
	submitCommand(s, "redraw")

	if !s.needsClear {
		t.Fatalf("needsClear = false after :redraw, want true")
	}
}

func TestSubmitCommandNoHighlightClearsSearchMatches(t *testing.T) {
	s := newTestState()
	s.SearchMatch = []search.Match{{Start: 0, End: 1}}

	submitCommand(s, "nohighlight")

	if s.SearchMatch != nil {
		t.Fatalf("SearchMatch = %v, want nil after :nohighlight", s.SearchMatch)
	}
}

func TestHandlePromptKeySubmitRunsCommand(t *testing.T) {
	s := newTestState()
	enterPrompt(s, keymap.Command, ':')

	for _, r := range "q!" {
		handlePromptKey(s, keymap.Char(r))
	}
	handlePromptKey(s, keymap.Special(keymap.KeyEnter))

	if s.Prompt != nil {
		t.Fatalf("Prompt still set after submit")
	}
	if s.Mode != keymap.Normal {
		t.Fatalf("Mode = %v, want Normal after submit", s.Mode)
	}
	if !s.ShouldQuit {
		t.Fatalf("ShouldQuit = false, want true after submitting q!")
	}
}

func TestHandlePromptKeyEscapeCancels(t *testing.T) {
	s := newTestState()
	enterPrompt(s, keymap.Command, ':')
	handlePromptKey(s, keymap.Char('q'))
	handlePromptKey(s, keymap.Special(keymap.KeyEscape))

	if s.Prompt != nil {
		t.Fatalf("Prompt still set after cancel")
	}
	if s.ShouldQuit {
		t.Fatalf("ShouldQuit = true, want false: Escape should cancel without running the command")
	}
}
