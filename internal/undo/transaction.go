package undo

import "github.com/ehrlich-b/wtedit/internal/text"

// Recorder wraps a text.Buffer and a Tree, building up a Transaction
// from live edits and committing it as one undo unit. A command
// handler opens a Recorder, performs its edits through Insert/Delete
// (which both mutate the buffer and record the edit), and finishes
// with Commit.
type Recorder struct {
	buf *text.Buffer
	tx  Transaction
}

// Begin opens a new transaction labeled label, capturing the buffer's
// current cursor as the entry cursor to restore on undo.
func Begin(buf *text.Buffer, label string) *Recorder {
	return &Recorder{buf: buf, tx: Transaction{Label: label, EntryCursor: buf.Cursor()}}
}

// Insert inserts text at pos in the buffer and records the edit.
func (r *Recorder) Insert(pos int, insertedText string) {
	r.buf.Insert(pos, insertedText)
	r.tx.Edits = append(r.tx.Edits, Edit{Kind: InsertEdit, Pos: pos, Text: insertedText})
}

// Delete removes the range [start, end) from the buffer and records
// the deleted text so the edit can be inverted.
func (r *Recorder) Delete(start, end int) {
	deleted := r.buf.Delete(start, end)
	if deleted == "" {
		return
	}
	r.tx.Edits = append(r.tx.Edits, Edit{Kind: DeleteEdit, Pos: start, Text: deleted})
}

// Commit attaches the accumulated transaction to tree as a new child
// of its current node. An empty transaction (no edits performed) is a
// no-op and consumes no sequence number.
func (r *Recorder) Commit(tree *Tree) Seq {
	return tree.Commit(r.tx)
}

// applier returns the Apply callback Tree.Undo/Redo/Goto use to
// replay edits against buf.
func applier(buf *text.Buffer) Apply {
	return func(e Edit) {
		switch e.Kind {
		case InsertEdit:
			buf.Insert(e.Pos, e.Text)
		case DeleteEdit:
			buf.Delete(e.Pos, e.Pos+len([]rune(e.Text)))
		}
	}
}

// Undo applies tree's current transaction's inverse edits to buf and
// moves tree's current node to its parent. It reports false if
// already at the root.
func Undo(tree *Tree, buf *text.Buffer) bool {
	before := tree.current.transaction.EntryCursor
	ok := tree.Undo(applier(buf))
	if ok {
		buf.SetCursor(before)
	}
	return ok
}

// Redo applies tree's current node's primary child's forward edits to
// buf, advances tree's current node to it, and restores the cursor to
// where those edits leave it. It reports false if current has no
// children.
func Redo(tree *Tree, buf *text.Buffer) bool {
	ok := tree.Redo(applier(buf))
	if ok {
		buf.SetCursor(tree.current.transaction.endCursor())
	}
	return ok
}

// Goto moves tree's current node to seq, replaying edits against buf
// along the way.
func Goto(tree *Tree, buf *text.Buffer, seq Seq) error {
	return tree.Goto(seq, applier(buf))
}
