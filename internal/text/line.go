// Package text layers code-point-addressed line queries and a cursor
// on top of the piece table: the line index (spec C2) and the text
// buffer (spec C3).
package text

import "github.com/ehrlich-b/wtedit/internal/piece"

// LineIndex answers line-oriented queries over a piece.Table in
// code-point space. When a warmed piece.ByteLineMap is installed and
// its revision matches the index's current revision, queries resolve
// via binary search (O(log lines)); otherwise they fall back to a
// direct piece.Table tree walk.
type LineIndex struct {
	table    *piece.Table
	revision int
	cache    *piece.ByteLineMap
}

func newLineIndex(t *piece.Table) *LineIndex { return &LineIndex{table: t} }

func (li *LineIndex) invalidate(revision int) { li.revision = revision }

// SetCache installs a freshly warmed line map (produced by the job
// manager's warming job). A map whose Revision no longer matches the
// index's revision is simply ignored on the next query rather than
// causing incorrect results.
func (li *LineIndex) SetCache(m *piece.ByteLineMap) { li.cache = m }

func (li *LineIndex) freshCache() *piece.ByteLineMap {
	if li.cache != nil && li.cache.Revision == li.revision {
		return li.cache
	}
	return nil
}

// LineCount returns the number of lines in the buffer.
func (li *LineIndex) LineCount() int { return li.table.LineCount() }

// LineAt returns the 0-indexed line containing code-point offset
// charPos.
func (li *LineIndex) LineAt(charPos int) int {
	if m := li.freshCache(); m != nil {
		return m.LineAtChar(charPos)
	}
	return li.table.LineAtBytePos(li.table.CharToByte(charPos))
}

// LineStart returns the code-point offset at which line begins.
func (li *LineIndex) LineStart(line int) int {
	if m := li.freshCache(); m != nil {
		return m.LineStartChar(line)
	}
	return li.table.ByteToChar(li.table.LineStartOffset(line))
}

// LineEnd returns the code-point offset one past the end of line
// (i.e. the start of the next line, or the buffer's end for the last
// line). The trailing newline, if any, is included in this range.
func (li *LineIndex) LineEnd(line int) int {
	if line+1 < li.LineCount() {
		return li.LineStart(line + 1)
	}
	return li.table.CharLen()
}
