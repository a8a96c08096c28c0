// Package undo implements the document's transactional undo tree:
// sequence-numbered transactions arranged as a parent-pointer tree so
// that undoing into the past and then making a new edit branches
// rather than destroys the abandoned future.
package undo

import "fmt"

// Seq is a monotonically assigned transaction identifier.
type Seq uint64

// EditKind tags which half of an Edit pair is in play.
type EditKind uint8

const (
	// InsertEdit records text that was inserted at Pos.
	InsertEdit EditKind = iota
	// DeleteEdit records text that was removed starting at Pos. Text
	// holds the characters that were deleted, so the edit can be
	// replayed forward (delete again) or inverted (re-insert Text).
	DeleteEdit
)

// Edit is one low-level buffer mutation within a Transaction.
type Edit struct {
	Kind EditKind
	Pos  int
	Text string
}

// inverse returns the edit that undoes e.
func (e Edit) inverse() Edit {
	switch e.Kind {
	case InsertEdit:
		return Edit{Kind: DeleteEdit, Pos: e.Pos, Text: e.Text}
	default:
		return Edit{Kind: InsertEdit, Pos: e.Pos, Text: e.Text}
	}
}

// Transaction groups the edits one user command performs into a
// single undo/redo unit, along with the cursor position to restore on
// entry (before the edits) so undo can put the cursor back where the
// command started.
type Transaction struct {
	Label       string
	EntryCursor int
	Edits       []Edit
}

// IsEmpty reports whether the transaction has no edits; committing one
// of these is a documented no-op.
func (tx Transaction) IsEmpty() bool { return len(tx.Edits) == 0 }

// forward replays tx's edits in recorded order via apply.
func (tx Transaction) forward(apply func(Edit)) {
	for _, e := range tx.Edits {
		apply(e)
	}
}

// endCursor returns where the cursor belongs after replaying tx's
// edits forward: just past the last inserted text, or at the deletion
// point for a trailing delete.
func (tx Transaction) endCursor() int {
	if len(tx.Edits) == 0 {
		return tx.EntryCursor
	}
	last := tx.Edits[len(tx.Edits)-1]
	if last.Kind == InsertEdit {
		return last.Pos + len([]rune(last.Text))
	}
	return last.Pos
}

// backward replays tx's edits in reverse, inverted, via apply.
func (tx Transaction) backward(apply func(Edit)) {
	for i := len(tx.Edits) - 1; i >= 0; i-- {
		apply(tx.Edits[i].inverse())
	}
}

// node is one vertex of the undo tree.
type node struct {
	seq            Seq
	parent         *node
	children       []*node
	transaction    Transaction
	checkpointName string
	hasCheckpoint  bool
	// primaryChild indexes into children: the child redo prefers. It is
	// an index, not a pointer, so the tree stays a pure parent-pointer
	// structure with no possibility of a reference cycle.
	primaryChild int
}

// Tree is the undo tree for one document. The zero value is not
// usable; use New.
type Tree struct {
	root    *node
	current *node
	nextSeq Seq
	byID    map[Seq]*node
}

// New constructs a Tree with a single root node at seq 0 representing
// the document's initial (pre-edit) state.
func New() *Tree {
	root := &node{seq: 0, primaryChild: -1}
	return &Tree{
		root:    root,
		current: root,
		nextSeq: 1,
		byID:    map[Seq]*node{0: root},
	}
}

// CurrentSeq returns the sequence number of the current node.
func (t *Tree) CurrentSeq() Seq { return t.current.seq }

// Apply is the callback shape used to replay edits against a live
// buffer: Undo/Redo/Goto call it once per edit, in the order
// needed to reach the target state.
type Apply func(Edit)

// Commit assigns tx the next sequence number, attaches it as a new
// child of the current node, and advances current to it. A tx with no
// edits is a documented no-op and does not consume a sequence number.
// Commit does not touch the buffer: the caller has already performed
// the edits, and Commit only records them.
func (t *Tree) Commit(tx Transaction) Seq {
	if tx.IsEmpty() {
		return t.current.seq
	}
	n := &node{
		seq:          t.nextSeq,
		parent:       t.current,
		transaction:  tx,
		primaryChild: -1,
	}
	t.nextSeq++
	t.current.children = append(t.current.children, n)
	t.current.primaryChild = len(t.current.children) - 1
	t.current = n
	t.byID[n.seq] = n
	return n.seq
}

// Undo applies the inverse edits of current's transaction and moves
// current to its parent. At the root, Undo is a no-op and ok is false
// so the caller can surface "already at oldest change".
func (t *Tree) Undo(apply Apply) (ok bool) {
	if t.current.parent == nil {
		return false
	}
	t.current.transaction.backward(apply)
	t.current = t.current.parent
	return true
}

// Redo moves to current's primary child (the branch last taken, or
// the most recently committed one if current has never been visited
// with children before) and applies its forward edits. If current has
// no children, Redo is a no-op and ok is false so the caller can
// surface "already at newest change".
func (t *Tree) Redo(apply Apply) (ok bool) {
	if len(t.current.children) == 0 {
		return false
	}
	idx := t.current.primaryChild
	if idx < 0 || idx >= len(t.current.children) {
		idx = len(t.current.children) - 1
	}
	child := t.current.children[idx]
	child.transaction.forward(apply)
	t.current.primaryChild = idx
	t.current = child
	return true
}

// Goto walks the tree from current to the node with the given seq,
// undoing back to their lowest common ancestor and then redoing
// forward, applying edits one node at a time. On success it records
// the traversed child at every branch point so later plain Redo calls
// prefer this path. It returns an error if seq is unknown.
func (t *Tree) Goto(seq Seq, apply Apply) error {
	target, ok := t.byID[seq]
	if !ok {
		return fmt.Errorf("undo: unknown sequence %d", seq)
	}

	ancestor, toPath := lowestCommonAncestor(t.current, target)

	for n := t.current; n != ancestor; n = n.parent {
		n.transaction.backward(apply)
	}
	t.current = ancestor

	for i := len(toPath) - 1; i >= 0; i-- {
		child := toPath[i]
		child.transaction.forward(apply)
		child.parent.primaryChild = indexOfChild(child.parent, child)
		t.current = child
	}
	return nil
}

// Checkpoint tags the current node with name. Checkpoints are durable
// for the life of the Tree (never pruned) and surfaced to the
// undo-tree overlay component.
func (t *Tree) Checkpoint(name string) {
	t.current.checkpointName = name
	t.current.hasCheckpoint = true
}

// CheckpointSeq returns the seq tagged with name, if any checkpoint by
// that name exists.
func (t *Tree) CheckpointSeq(name string) (Seq, bool) {
	for seq, n := range t.byID {
		if n.hasCheckpoint && n.checkpointName == name {
			return seq, true
		}
	}
	return 0, false
}

// pathToRoot returns the chain of nodes from n up to (and including)
// the tree root, root-last (n, n.parent, ..., root).
func pathToRoot(n *node) []*node {
	var path []*node
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur)
	}
	return path
}

// lowestCommonAncestor returns the LCA of a and b along with b's path
// back to (but excluding) the LCA, root-last, so iterating it in
// reverse walks LCA -> b.
func lowestCommonAncestor(a, b *node) (lca *node, toPath []*node) {
	aPath := pathToRoot(a)
	bPath := pathToRoot(b)

	aSeen := make(map[*node]bool, len(aPath))
	for _, n := range aPath {
		aSeen[n] = true
	}
	for i, n := range bPath {
		if aSeen[n] {
			return n, bPath[:i]
		}
	}
	return nil, bPath
}

func indexOfChild(parent, child *node) int {
	for i, c := range parent.children {
		if c == child {
			return i
		}
	}
	return -1
}
