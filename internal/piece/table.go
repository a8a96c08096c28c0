package piece

// Table is the piece table (rope over pieces): two immutable backing
// buffers — original and add — addressed by an AVL-balanced tree of
// Pieces. All positional arguments to Table's methods are byte offsets;
// code-point (Character) addressing is layered on top via CharToByte /
// ByteToChar, which the text package uses to expose a char-indexed
// buffer.
type Table struct {
	original []byte
	add      []byte
	root     *node
}

// New builds a Table seeded with the given immutable original content.
func New(original []byte) *Table {
	t := &Table{original: original}
	if len(original) > 0 {
		t.root = newLeaf(Piece{Source: Original, Start: 0, Length: len(original)}, t.original, t.add)
	}
	return t
}

// ByteLen returns the total length of the buffer in bytes.
func (t *Table) ByteLen() int { return nodeByteLen(t.root) }

// CharLen returns the total length of the buffer in code points
// (Characters).
func (t *Table) CharLen() int { return nodeCharLen(t.root) }

// LineCount returns the number of lines in the buffer. A buffer with no
// trailing newline still has at least one line.
func (t *Table) LineCount() int { return nodeNewlines(t.root) + 1 }

// Insert splices text into the add buffer and grafts a new leaf piece
// for it at byte offset pos.
func (t *Table) Insert(pos int, text []byte) {
	if len(text) == 0 {
		return
	}
	start := len(t.add)
	t.add = append(t.add, text...)
	leaf := newLeaf(Piece{Source: Add, Start: start, Length: len(text)}, t.original, t.add)

	left, right := split(t.root, pos, t.original, t.add)
	t.root = merge(merge(left, leaf), right)
}

// Delete removes the half-open byte range [start, end) from the buffer.
func (t *Table) Delete(start, end int) {
	if end <= start {
		return
	}
	left, rest := split(t.root, start, t.original, t.add)
	_, right := split(rest, end-start, t.original, t.add)
	t.root = merge(left, right)
}

// ByteAt returns the byte at offset pos and true, or 0 and false if pos
// is out of range.
func (t *Table) ByteAt(pos int) (byte, bool) {
	n := t.root
	for n != nil {
		leftLen := nodeByteLen(n.left)
		switch {
		case pos < leftLen:
			n = n.left
		case pos < leftLen+n.piece.Length:
			b := n.bytes(t.original, t.add)
			return b[pos-leftLen], true
		default:
			pos -= leftLen + n.piece.Length
			n = n.right
		}
	}
	return 0, false
}

// BytesRange materializes the half-open byte range [start, end) as a
// single contiguous slice.
func (t *Table) BytesRange(start, end int) []byte {
	if end <= start {
		return nil
	}
	out := make([]byte, 0, end-start)
	for _, chunk := range t.ChunksInRange(start, end) {
		out = append(out, chunk...)
	}
	return out
}

// ChunksInRange returns the backing-buffer slices covering the
// half-open byte range [start, end), one slice per piece, without
// concatenating them. Used by callers (line source, search) that can
// operate piece-by-piece and want to avoid an extra copy.
func (t *Table) ChunksInRange(start, end int) [][]byte {
	if end <= start {
		return nil
	}
	var chunks [][]byte
	var walk func(n *node, base int)
	walk = func(n *node, base int) {
		if n == nil {
			return
		}
		leftLen := nodeByteLen(n.left)
		pieceStart := base + leftLen
		pieceEnd := pieceStart + n.piece.Length

		if start < pieceStart {
			walk(n.left, base)
		}
		if start < pieceEnd && end > pieceStart {
			lo := start - pieceStart
			if lo < 0 {
				lo = 0
			}
			hi := end - pieceStart
			if hi > n.piece.Length {
				hi = n.piece.Length
			}
			b := n.bytes(t.original, t.add)
			chunks = append(chunks, b[lo:hi])
		}
		if end > pieceEnd {
			walk(n.right, pieceEnd)
		}
	}
	walk(t.root, 0)
	return chunks
}

// Chars decodes the half-open byte range [start, end) into Characters.
func (t *Table) Chars(start, end int) []Character {
	var out []Character
	for _, chunk := range t.ChunksInRange(start, end) {
		for len(chunk) > 0 {
			ch, n := DecodeCharacter(chunk)
			out = append(out, ch)
			chunk = chunk[n:]
		}
	}
	return out
}

// LineStartOffset returns the byte offset at which the given 0-indexed
// line begins. line 0 always starts at offset 0. Requesting a line
// beyond the last one returns ByteLen().
func (t *Table) LineStartOffset(line int) int {
	if line <= 0 {
		return 0
	}
	n := t.root
	base := 0
	target := line
	for n != nil {
		leftNewlines := nodeNewlines(n.left)
		if target <= leftNewlines {
			n = n.left
			continue
		}
		target -= leftNewlines
		// n.piece contributes n.pieceNewlines newlines; if target still
		// exceeds those, the line starts in the right subtree.
		if target > n.pieceNewlines {
			target -= n.pieceNewlines
			base += nodeByteLen(n.left) + n.piece.Length
			n = n.right
			continue
		}
		// The line we want starts inside this piece, after the
		// target'th newline within it.
		b := n.bytes(t.original, t.add)
		pieceBase := base + nodeByteLen(n.left)
		seen := 0
		for i, c := range b {
			if c == '\n' {
				seen++
				if seen == target {
					return pieceBase + i + 1
				}
			}
		}
		return pieceBase + len(b)
	}
	return t.ByteLen()
}

// LineAtBytePos returns the 0-indexed line containing byte offset pos.
// A pos at or beyond ByteLen() saturates to the last line.
func (t *Table) LineAtBytePos(pos int) int {
	total := t.ByteLen()
	if pos >= total {
		return t.LineCount() - 1
	}
	if pos < 0 {
		pos = 0
	}
	n := t.root
	line := 0
	for n != nil {
		leftLen := nodeByteLen(n.left)
		if pos < leftLen {
			n = n.left
			continue
		}
		line += nodeNewlines(n.left)
		pos -= leftLen
		if pos < n.piece.Length {
			b := n.bytes(t.original, t.add)
			for i := 0; i < pos; i++ {
				if b[i] == '\n' {
					line++
				}
			}
			return line
		}
		line += n.pieceNewlines
		pos -= n.piece.Length
		n = n.right
	}
	return line
}

// CharToByte converts a code-point offset to the byte offset at which
// that code point begins.
func (t *Table) CharToByte(charPos int) int {
	if charPos <= 0 {
		return 0
	}
	n := t.root
	base := 0
	for n != nil {
		leftChars := nodeCharLen(n.left)
		if charPos < leftChars {
			n = n.left
			continue
		}
		charPos -= leftChars
		leftBytes := nodeByteLen(n.left)
		if charPos < n.pieceCharLen {
			b := n.bytes(t.original, t.add)
			offset := 0
			for i := 0; i < charPos; i++ {
				_, size := DecodeCharacter(b[offset:])
				offset += size
			}
			return base + leftBytes + offset
		}
		charPos -= n.pieceCharLen
		base += leftBytes + n.piece.Length
		n = n.right
	}
	return base
}

// ByteToChar converts a byte offset to the code-point offset of the
// character containing it. A byte offset that lands mid-character
// returns the offset of the character that contains it, not the
// following one.
func (t *Table) ByteToChar(bytePos int) int {
	if bytePos <= 0 {
		return 0
	}
	n := t.root
	chars := 0
	for n != nil {
		leftLen := nodeByteLen(n.left)
		if bytePos < leftLen {
			n = n.left
			continue
		}
		chars += nodeCharLen(n.left)
		bytePos -= leftLen
		if bytePos < n.piece.Length {
			b := n.bytes(t.original, t.add)
			offset := 0
			for offset < bytePos {
				_, size := DecodeCharacter(b[offset:])
				if offset+size > bytePos {
					break
				}
				offset += size
				chars++
			}
			return chars
		}
		chars += n.pieceCharLen
		bytePos -= n.piece.Length
		n = n.right
	}
	return chars
}
