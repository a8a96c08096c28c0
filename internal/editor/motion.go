package editor

import (
	"unicode"

	"github.com/ehrlich-b/wtedit/internal/document"
	"github.com/ehrlich-b/wtedit/internal/render"
)

// moveLeft/moveRight/moveUp/moveDown/... implement the Motion variants
// from original_source/src/action/mod.rs (Left, Right, Up, Down,
// StartOfLine, EndOfLine, StartOfFile, EndOfFile, PageUp, PageDown,
// NextWord, PreviousWord, NextParagraph, PreviousParagraph) against
// internal/text.Buffer's code-point addressing, repeated count times
// for a leading numeric count.

func moveLeft(doc *document.Document, count int) {
	buf := doc.Buffer
	pos := buf.Cursor()
	buf.SetCursor(max0(pos - count))
}

func moveRight(doc *document.Document, count int) {
	buf := doc.Buffer
	pos := buf.Cursor()
	buf.SetCursor(pos + count)
}

func moveUp(doc *document.Document, count int) {
	buf := doc.Buffer
	line := buf.LineAt(buf.Cursor())
	col := buf.Cursor() - buf.LineStart(line)
	target := max0(line - count)
	buf.SetCursor(clampToLine(buf, target, col))
}

func moveDown(doc *document.Document, count int) {
	buf := doc.Buffer
	line := buf.LineAt(buf.Cursor())
	col := buf.Cursor() - buf.LineStart(line)
	target := line + count
	if max := buf.LineCount() - 1; target > max {
		target = max
	}
	buf.SetCursor(clampToLine(buf, target, col))
}

// clampToLine returns the code-point offset of column col on line,
// clamped to the line's actual length (shorter lines pull the cursor
// back rather than carrying it past the newline).
func clampToLine(buf bufferLike, line, col int) int {
	start := buf.LineStart(line)
	end := buf.LineEnd(line)
	lineLen := lineTextLen(buf, start, end)
	if col > lineLen {
		col = lineLen
	}
	return start + col
}

// lineTextLen returns a line's length in code points, excluding the
// trailing newline LineEnd includes for every line but the last.
func lineTextLen(buf bufferLike, start, end int) int {
	n := end - start
	if n > 0 {
		if text := buf.Text(end-1, end); text == "\n" {
			n--
		}
	}
	return n
}

func moveLineStart(doc *document.Document) {
	buf := doc.Buffer
	line := buf.LineAt(buf.Cursor())
	buf.SetCursor(buf.LineStart(line))
}

func moveLineEnd(doc *document.Document) {
	buf := doc.Buffer
	line := buf.LineAt(buf.Cursor())
	start, end := buf.LineStart(line), buf.LineEnd(line)
	buf.SetCursor(start + lineTextLen(buf, start, end))
}

func moveBufferStart(doc *document.Document) { doc.Buffer.SetCursor(0) }
func moveBufferEnd(doc *document.Document)   { doc.Buffer.SetCursor(doc.Buffer.Len()) }

func pageUp(doc *document.Document, vp *render.Viewport) {
	moveUp(doc, max0(vp.VisibleRows()-1))
}

func pageDown(doc *document.Document, vp *render.Viewport) {
	moveDown(doc, max0(vp.VisibleRows()-1))
}

// isWordRune reports whether r participates in a "word" for w/b
// motion: letters, digits, and underscore, matching vim's default
// iskeyword-ish classification closely enough for the core motion.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// wordNext advances to the start of the next word, skipping the
// remainder of the current word (if any) and any whitespace/
// punctuation between words.
func wordNext(doc *document.Document, count int) {
	buf := doc.Buffer
	for i := 0; i < count; i++ {
		pos := buf.Cursor()
		n := buf.Len()
		if pos >= n {
			return
		}
		cur := runeAt(buf, pos)
		if isWordRune(cur) {
			for pos < n && isWordRune(runeAt(buf, pos)) {
				pos++
			}
		} else if cur != '\n' && !unicode.IsSpace(cur) {
			for pos < n && !isWordRune(runeAt(buf, pos)) && !unicode.IsSpace(runeAt(buf, pos)) {
				pos++
			}
		}
		for pos < n && unicode.IsSpace(runeAt(buf, pos)) {
			pos++
		}
		buf.SetCursor(pos)
	}
}

// wordPrev moves to the start of the previous word, the mirror of
// wordNext.
func wordPrev(doc *document.Document, count int) {
	buf := doc.Buffer
	for i := 0; i < count; i++ {
		pos := buf.Cursor()
		for pos > 0 && unicode.IsSpace(runeAt(buf, pos-1)) {
			pos--
		}
		if pos == 0 {
			buf.SetCursor(0)
			continue
		}
		if isWordRune(runeAt(buf, pos - 1)) {
			for pos > 0 && isWordRune(runeAt(buf, pos-1)) {
				pos--
			}
		} else {
			for pos > 0 && !isWordRune(runeAt(buf, pos-1)) && !unicode.IsSpace(runeAt(buf, pos-1)) {
				pos--
			}
		}
		buf.SetCursor(pos)
	}
}

// paragraphNext moves to the next blank line, or end of buffer.
// paragraphPrev is its mirror. Per the Open Question resolution
// recorded in DESIGN.md, PreviousParagraph is a documented no-op when
// already at position 0 rather than wrapping.
func paragraphNext(doc *document.Document) {
	buf := doc.Buffer
	line := buf.LineAt(buf.Cursor())
	for l := line + 1; l < buf.LineCount(); l++ {
		if isBlankLine(buf, l) {
			buf.SetCursor(buf.LineStart(l))
			return
		}
	}
	buf.SetCursor(buf.Len())
}

func paragraphPrev(doc *document.Document) {
	buf := doc.Buffer
	if buf.Cursor() == 0 {
		return
	}
	line := buf.LineAt(buf.Cursor())
	for l := line - 1; l >= 0; l-- {
		if isBlankLine(buf, l) {
			buf.SetCursor(buf.LineStart(l))
			return
		}
	}
	buf.SetCursor(0)
}

func isBlankLine(buf bufferLike, line int) bool {
	start, end := buf.LineStart(line), buf.LineEnd(line)
	return lineTextLen(buf, start, end) == 0
}

func runeAt(buf bufferLike, pos int) rune {
	text := buf.Text(pos, pos+1)
	for _, r := range text {
		return r
	}
	return 0
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// bufferLike is the minimal surface the line/column helpers need, so
// they can be unit tested without constructing a full text.Buffer.
type bufferLike interface {
	LineStart(line int) int
	LineEnd(line int) int
	Text(start, end int) string
}
