package component

import (
	"testing"

	"github.com/ehrlich-b/wtedit/internal/keymap"
	"github.com/ehrlich-b/wtedit/internal/render"
)

func TestInputLineTypingAccumulatesValue(t *testing.T) {
	l := NewInputLine(':')
	for _, r := range "wq" {
		res := l.HandleInput(keymap.Char(r))
		if res.Kind != Consumed {
			t.Fatalf("HandleInput(%q) kind = %v, want Consumed", r, res.Kind)
		}
	}
	if l.Value() != "wq" {
		t.Fatalf("Value() = %q, want %q", l.Value(), "wq")
	}
}

func TestInputLineEnterSubmits(t *testing.T) {
	l := NewInputLine(':')
	l.HandleInput(keymap.Char('q'))
	res := l.HandleInput(keymap.Special(keymap.KeyEnter))
	if res.Kind != ActionResult {
		t.Fatalf("HandleInput(Enter) kind = %v, want ActionResult", res.Kind)
	}
	submit, ok := res.Action.(SubmitAction)
	if !ok || submit.Text != "q" {
		t.Fatalf("HandleInput(Enter) action = %#v", res.Action)
	}
}

func TestInputLineEscapeCancels(t *testing.T) {
	l := NewInputLine('/')
	res := l.HandleInput(keymap.Special(keymap.KeyEscape))
	if res.Kind != ActionResult {
		t.Fatalf("HandleInput(Escape) kind = %v, want ActionResult", res.Kind)
	}
	if _, ok := res.Action.(CancelAction); !ok {
		t.Fatalf("HandleInput(Escape) action = %#v, want CancelAction", res.Action)
	}
}

func TestInputLineBackspaceRemovesLastRune(t *testing.T) {
	l := NewInputLine(':')
	l.HandleInput(keymap.Char('a'))
	l.HandleInput(keymap.Char('b'))
	l.HandleInput(keymap.Special(keymap.KeyBackspace))
	if l.Value() != "a" {
		t.Fatalf("Value() after backspace = %q, want %q", l.Value(), "a")
	}
}

func TestInputLineResetClearsValue(t *testing.T) {
	l := NewInputLine(':')
	l.HandleInput(keymap.Char('x'))
	l.Reset()
	if l.Value() != "" {
		t.Fatalf("Value() after Reset = %q, want empty", l.Value())
	}
}

func TestInputLineRenderIncludesPrefix(t *testing.T) {
	l := NewInputLine(':')
	l.HandleInput(keymap.Char('w'))
	layer := render.NewLayer(10, 1)
	l.Render(layer)
	// Cell 0 should be the prefix ':'.
	want := []rune(":w")
	for i, r := range want {
		c, painted := layerCellAt(layer, 0, i)
		if !painted || c.Char != r {
			t.Fatalf("cell (0,%d) = %q painted=%v, want %q", i, c.Char, painted, r)
		}
	}
}

func TestInputLineCursorPositionAfterPrefixAndText(t *testing.T) {
	l := NewInputLine(':')
	l.HandleInput(keymap.Char('w'))
	l.HandleInput(keymap.Char('q'))
	row, col, ok := l.CursorPosition()
	if !ok || row != 0 || col != 3 {
		t.Fatalf("CursorPosition() = (%d, %d, %v), want (0, 3, true)", row, col, ok)
	}
}

func TestInputLineIgnoresUnmappedKey(t *testing.T) {
	l := NewInputLine(':')
	res := l.HandleInput(keymap.Special(keymap.KeyResize))
	if res.Kind != Ignored {
		t.Fatalf("HandleInput(Resize) kind = %v, want Ignored", res.Kind)
	}
}

func layerCellAt(l *render.Layer, row, col int) (render.Cell, bool) {
	return l.At(row, col)
}
