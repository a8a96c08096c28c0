package editor

import (
	"testing"

	"github.com/ehrlich-b/wtedit/internal/document"
	"github.com/ehrlich-b/wtedit/internal/render"
)

func newTestDoc(content string) *document.Document {
	d := document.FromBytes("test-doc", "", []byte(content))
	return d
}

func TestMoveLeftRightClampToBufferEnds(t *testing.T) {
	d := newTestDoc("abc")
	d.Buffer.SetCursor(1)

	moveLeft(d, 5)
	if got := d.Buffer.Cursor(); got != 0 {
		t.Fatalf("moveLeft overshoot: cursor = %d, want 0", got)
	}

	moveRight(d, 100)
	if got, want := d.Buffer.Cursor(), d.Buffer.Len(); got != want {
		t.Fatalf("moveRight overshoot: cursor = %d, want %d", got, want)
	}
}

func TestMoveUpDownPreservesColumnWhenPossible(t *testing.T) {
	d := newTestDoc("abcd\nxy\nefgh\n")
	// Put cursor at column 3 on line 0 ("abcd").
	d.Buffer.SetCursor(3)

	moveDown(d, 1)
	line := d.Buffer.LineAt(d.Buffer.Cursor())
	if line != 1 {
		t.Fatalf("moveDown landed on line %d, want 1", line)
	}
	// Line 1 ("xy") is shorter than column 3, so cursor clamps to its end.
	if col := d.Buffer.Cursor() - d.Buffer.LineStart(1); col != 2 {
		t.Fatalf("moveDown column = %d, want 2 (clamped to short line)", col)
	}

	moveDown(d, 1)
	line = d.Buffer.LineAt(d.Buffer.Cursor())
	if line != 2 {
		t.Fatalf("second moveDown landed on line %d, want 2", line)
	}
	// Line 2 ("efgh") is long enough for the original column 3 to survive.
	if col := d.Buffer.Cursor() - d.Buffer.LineStart(2); col != 3 {
		t.Fatalf("moveDown column after returning to a long line = %d, want 3", col)
	}

	moveUp(d, 2)
	if line := d.Buffer.LineAt(d.Buffer.Cursor()); line != 0 {
		t.Fatalf("moveUp landed on line %d, want 0", line)
	}
}

func TestMoveLineStartEnd(t *testing.T) {
	d := newTestDoc("hello\nworld\n")
	d.Buffer.SetCursor(2)

	moveLineEnd(d)
	if got, want := d.Buffer.Cursor(), 5; got != want {
		t.Fatalf("moveLineEnd cursor = %d, want %d", got, want)
	}

	moveLineStart(d)
	if got := d.Buffer.Cursor(); got != 0 {
		t.Fatalf("moveLineStart cursor = %d, want 0", got)
	}
}

func TestMoveBufferStartEnd(t *testing.T) {
	d := newTestDoc("one\ntwo\nthree\n")
	d.Buffer.SetCursor(5)

	moveBufferEnd(d)
	if got, want := d.Buffer.Cursor(), d.Buffer.Len(); got != want {
		t.Fatalf("moveBufferEnd cursor = %d, want %d", got, want)
	}

	moveBufferStart(d)
	if got := d.Buffer.Cursor(); got != 0 {
		t.Fatalf("moveBufferStart cursor = %d, want 0", got)
	}
}

func TestPageUpDown(t *testing.T) {
	d := newTestDoc("1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n")
	vp := render.NewViewport(4, 80)
	d.Buffer.SetCursor(0)

	pageDown(d, vp)
	if line := d.Buffer.LineAt(d.Buffer.Cursor()); line != 3 {
		t.Fatalf("pageDown landed on line %d, want 3 (visibleRows-1)", line)
	}

	pageUp(d, vp)
	if line := d.Buffer.LineAt(d.Buffer.Cursor()); line != 0 {
		t.Fatalf("pageUp landed on line %d, want 0", line)
	}
}

func TestWordNextSkipsWordThenWhitespace(t *testing.T) {
	d := newTestDoc("foo bar  baz")
	d.Buffer.SetCursor(0)

	wordNext(d, 1)
	if got, want := d.Buffer.Cursor(), 4; got != want {
		t.Fatalf("wordNext cursor = %d, want %d (start of \"bar\")", got, want)
	}

	wordNext(d, 1)
	if got, want := d.Buffer.Cursor(), 9; got != want {
		t.Fatalf("second wordNext cursor = %d, want %d (start of \"baz\")", got, want)
	}
}

func TestWordPrevMirrorsWordNext(t *testing.T) {
	d := newTestDoc("foo bar  baz")
	d.Buffer.SetCursor(9)

	wordPrev(d, 1)
	if got, want := d.Buffer.Cursor(), 4; got != want {
		t.Fatalf("wordPrev cursor = %d, want %d (start of \"bar\")", got, want)
	}

	wordPrev(d, 1)
	if got := d.Buffer.Cursor(); got != 0 {
		t.Fatalf("second wordPrev cursor = %d, want 0", got)
	}
}

func TestWordNextOnPunctuationRun(t *testing.T) {
	d := newTestDoc("foo...bar")
	d.Buffer.SetCursor(0)

	wordNext(d, 1)
	if got, want := d.Buffer.Cursor(), 3; got != want {
		t.Fatalf("wordNext cursor = %d, want %d (start of punctuation run)", got, want)
	}
}

func TestParagraphNextFindsBlankLine(t *testing.T) {
	d := newTestDoc("a\nb\n\nc\nd\n")
	d.Buffer.SetCursor(0)

	paragraphNext(d)
	line := d.Buffer.LineAt(d.Buffer.Cursor())
	if line != 2 {
		t.Fatalf("paragraphNext landed on line %d, want 2 (the blank line)", line)
	}
}

func TestParagraphNextFallsBackToBufferEnd(t *testing.T) {
	d := newTestDoc("a\nb\nc\n")
	d.Buffer.SetCursor(0)

	paragraphNext(d)
	if got, want := d.Buffer.Cursor(), d.Buffer.Len(); got != want {
		t.Fatalf("paragraphNext cursor = %d, want %d (end of buffer)", got, want)
	}
}

func TestParagraphPrevIsNoopAtBufferStart(t *testing.T) {
	d := newTestDoc("a\nb\nc\n")
	d.Buffer.SetCursor(0)

	paragraphPrev(d)
	if got := d.Buffer.Cursor(); got != 0 {
		t.Fatalf("paragraphPrev cursor = %d, want 0 (documented no-op)", got)
	}
}
