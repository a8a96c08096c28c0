package piece

import "sort"

// ByteLineMap is a flattened, revision-tagged index of where every line
// starts in both byte and code-point space. It is built once by the
// background warming job (internal/job/warmjob.go) rather than kept
// incrementally up to date, so callers must check Revision against
// their own edit counter before trusting it; a stale map is simply
// discarded in favor of a direct Table walk.
//
// Grounded on original_source/src/job_manager/jobs/cache_warming.rs,
// which walks piece_table.chunks() once, counting newlines and
// char/byte offsets in lockstep.
type ByteLineMap struct {
	Revision       int
	LineStartBytes []int
	LineStartChars []int
}

// BuildByteLineMap walks t once, front to back, recording the byte and
// char offset of the start of every line, and tags the result with
// revision so callers can detect staleness after further edits.
func BuildByteLineMap(t *Table, revision int) *ByteLineMap {
	m := &ByteLineMap{
		Revision:       revision,
		LineStartBytes: []int{0},
		LineStartChars: []int{0},
	}
	byteOff, charOff := 0, 0
	for _, chunk := range t.ChunksInRange(0, t.ByteLen()) {
		for len(chunk) > 0 {
			ch, n := DecodeCharacter(chunk)
			byteOff += n
			charOff++
			if ch.Kind == Newline {
				m.LineStartBytes = append(m.LineStartBytes, byteOff)
				m.LineStartChars = append(m.LineStartChars, charOff)
			}
			chunk = chunk[n:]
		}
	}
	return m
}

// LineAtByte returns the 0-indexed line containing byte offset pos, via
// binary search over the precomputed line-start table: O(log lines).
func (m *ByteLineMap) LineAtByte(pos int) int {
	return sort.Search(len(m.LineStartBytes), func(i int) bool {
		return m.LineStartBytes[i] > pos
	}) - 1
}

// LineAtChar returns the 0-indexed line containing code-point offset
// pos, via binary search: O(log lines).
func (m *ByteLineMap) LineAtChar(pos int) int {
	return sort.Search(len(m.LineStartChars), func(i int) bool {
		return m.LineStartChars[i] > pos
	}) - 1
}

// LineStartByte returns the byte offset at which line begins. Out of
// range lines saturate to the first or last known offset.
func (m *ByteLineMap) LineStartByte(line int) int {
	if line < 0 {
		line = 0
	}
	if line >= len(m.LineStartBytes) {
		line = len(m.LineStartBytes) - 1
	}
	return m.LineStartBytes[line]
}

// LineStartChar returns the code-point offset at which line begins.
func (m *ByteLineMap) LineStartChar(line int) int {
	if line < 0 {
		line = 0
	}
	if line >= len(m.LineStartChars) {
		line = len(m.LineStartChars) - 1
	}
	return m.LineStartChars[line]
}

// LineCount returns the number of lines this map knows about.
func (m *ByteLineMap) LineCount() int { return len(m.LineStartBytes) }
