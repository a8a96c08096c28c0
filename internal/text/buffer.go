package text

import "github.com/ehrlich-b/wtedit/internal/piece"

// Buffer is the code-point-addressed text buffer (spec C3): a cursor
// and a revision counter layered over the piece table (C1) and the
// line index (C2). Every position Buffer accepts or returns is a
// code-point offset in [0, Len()]; byte-level concerns stay inside
// internal/piece.
type Buffer struct {
	table    *piece.Table
	lines    *LineIndex
	cursor   int
	revision int
}

// NewBuffer constructs a Buffer seeded with initial content.
func NewBuffer(initial []byte) *Buffer {
	t := piece.New(initial)
	return &Buffer{table: t, lines: newLineIndex(t)}
}

// Len returns the buffer's length in code points.
func (b *Buffer) Len() int { return b.table.CharLen() }

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int { return b.lines.LineCount() }

// Cursor returns the current code-point cursor position.
func (b *Buffer) Cursor() int { return b.cursor }

// Revision returns the edit counter, incremented once per Insert or
// Delete. Callers (the job manager's warming job, document dirty
// tracking, the render cache) use this to detect staleness.
func (b *Buffer) Revision() int { return b.revision }

// SetCursor moves the cursor, clamping to [0, Len()].
func (b *Buffer) SetCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if max := b.Len(); pos > max {
		pos = max
	}
	b.cursor = pos
}

// Insert splices text into the buffer at code-point offset pos.
func (b *Buffer) Insert(pos int, text string) {
	bytePos := b.table.CharToByte(pos)
	b.table.Insert(bytePos, []byte(text))
	b.revision++
	b.lines.invalidate(b.revision)
}

// Delete removes the half-open code-point range [start, end) and
// returns the text that was removed, so callers (the undo tree) can
// record it for reversal.
func (b *Buffer) Delete(start, end int) string {
	if end <= start {
		return ""
	}
	byteStart := b.table.CharToByte(start)
	byteEnd := b.table.CharToByte(end)
	deleted := string(b.table.BytesRange(byteStart, byteEnd))
	b.table.Delete(byteStart, byteEnd)
	b.revision++
	b.lines.invalidate(b.revision)
	return deleted
}

// Text returns the half-open code-point range [start, end) as a
// string.
func (b *Buffer) Text(start, end int) string {
	if end <= start {
		return ""
	}
	byteStart := b.table.CharToByte(start)
	byteEnd := b.table.CharToByte(end)
	return string(b.table.BytesRange(byteStart, byteEnd))
}

// CharAt returns the Character at code-point offset pos.
func (b *Buffer) CharAt(pos int) (piece.Character, bool) {
	if pos < 0 || pos >= b.Len() {
		return piece.Character{}, false
	}
	start := b.table.CharToByte(pos)
	end := b.table.ByteLen()
	if pos+1 < b.Len() {
		end = b.table.CharToByte(pos + 1)
	}
	ch, _ := piece.DecodeCharacter(b.table.BytesRange(start, end))
	return ch, true
}

// LineAt returns the 0-indexed line containing code-point offset pos.
func (b *Buffer) LineAt(pos int) int { return b.lines.LineAt(pos) }

// LineStart returns the code-point offset at which line begins.
func (b *Buffer) LineStart(line int) int { return b.lines.LineStart(line) }

// LineEnd returns the code-point offset one past the end of line.
func (b *Buffer) LineEnd(line int) int { return b.lines.LineEnd(line) }

// InstallLineCache wires a freshly warmed piece.ByteLineMap into the
// buffer's line index, as produced by the job manager's warming job
// (internal/job/warmjob.go).
func (b *Buffer) InstallLineCache(m *piece.ByteLineMap) { b.lines.SetCache(m) }

// BuildLineCache walks the buffer once and returns a piece.ByteLineMap
// tagged with the buffer's current revision. This is what the job
// manager's warming job calls in the background; it is exported here
// so tests and synchronous callers can build one without depending on
// internal/job.
func (b *Buffer) BuildLineCache() *piece.ByteLineMap {
	return piece.BuildByteLineMap(b.table, b.revision)
}

// CharToByte exposes the underlying byte offset for a code-point
// position, for components (render, search) that must interoperate
// with byte-oriented tools.
func (b *Buffer) CharToByte(pos int) int { return b.table.CharToByte(pos) }

// ByteToChar is the inverse of CharToByte.
func (b *Buffer) ByteToChar(pos int) int { return b.table.ByteToChar(pos) }

// Bytes returns the full buffer content as a byte slice, e.g. for
// writing to disk.
func (b *Buffer) Bytes() []byte { return b.table.BytesRange(0, b.table.ByteLen()) }
