package editor

import (
	"testing"

	"github.com/ehrlich-b/wtedit/internal/keymap"
)

func TestBuildFrameNoPromptOmitsCommandDrawState(t *testing.T) {
	s := newTestState()
	in := buildFrame(s)

	if in.Command != nil {
		t.Fatalf("Command = %+v, want nil when no prompt is active", in.Command)
	}
	if in.Buf == nil {
		t.Fatalf("Buf = nil, want the active document's buffer")
	}
	if in.Status.Mode != "normal" {
		t.Fatalf("Status.Mode = %q, want %q", in.Status.Mode, "normal")
	}
}

func TestBuildFrameWithPromptSetsCommandDrawState(t *testing.T) {
	s := newTestState()
	enterPrompt(s, keymap.Command, ':')
	handlePromptKey(s, keymap.Char('w'))

	in := buildFrame(s)
	if in.Command == nil {
		t.Fatalf("Command = nil, want non-nil while a prompt is active")
	}
	if in.Command.Content != ":w" {
		t.Fatalf("Command.Content = %q, want %q", in.Command.Content, ":w")
	}
}

func TestBuildFrameNeedsClearResetsAfterOneFrame(t *testing.T) {
	s := newTestState()
	s.needsClear = true

	in := buildFrame(s)
	if !in.NeedsClear {
		t.Fatalf("NeedsClear = false, want true for the frame that consumes the flag")
	}
	if s.needsClear {
		t.Fatalf("needsClear still true after buildFrame, want it cleared")
	}

	in2 := buildFrame(s)
	if in2.NeedsClear {
		t.Fatalf("NeedsClear = true on the following frame, want false")
	}
}

func TestFormatPendingKeysRendersCharsAndTagsSpecials(t *testing.T) {
	keys := []keymap.Key{keymap.Char('g'), keymap.Special(keymap.KeyArrowUp)}
	got := formatPendingKeys(keys)
	if got != "g~" {
		t.Fatalf("formatPendingKeys() = %q, want %q", got, "g~")
	}
}

func TestPromptPrefix(t *testing.T) {
	if got := promptPrefix(keymap.Search); got != '/' {
		t.Fatalf("promptPrefix(Search) = %q, want '/'", got)
	}
	if got := promptPrefix(keymap.Command); got != ':' {
		t.Fatalf("promptPrefix(Command) = %q, want ':'", got)
	}
}
