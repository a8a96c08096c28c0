package undo

import (
	"testing"

	"github.com/ehrlich-b/wtedit/internal/text"
)

func TestCommitUndoRedoRoundTrip(t *testing.T) {
	buf := text.NewBuffer([]byte("hello"))
	tree := New()

	r := Begin(buf, "insert")
	r.Insert(5, " world")
	r.Commit(tree)

	if got := buf.Text(0, buf.Len()); got != "hello world" {
		t.Fatalf("after insert = %q, want %q", got, "hello world")
	}

	if !Undo(tree, buf) {
		t.Fatal("Undo() = false, want true")
	}
	if got := buf.Text(0, buf.Len()); got != "hello" {
		t.Fatalf("after undo = %q, want %q", got, "hello")
	}

	if !Redo(tree, buf) {
		t.Fatal("Redo() = false, want true")
	}
	if got := buf.Text(0, buf.Len()); got != "hello world" {
		t.Fatalf("after redo = %q, want %q", got, "hello world")
	}
}

func TestUndoAtRootIsIdempotentFailure(t *testing.T) {
	buf := text.NewBuffer([]byte("x"))
	tree := New()
	if Undo(tree, buf) {
		t.Fatal("Undo() at root = true, want false")
	}
	if Undo(tree, buf) {
		t.Fatal("second Undo() at root = true, want false")
	}
}

func TestRedoWithNoChildrenFails(t *testing.T) {
	buf := text.NewBuffer([]byte("x"))
	tree := New()
	if Redo(tree, buf) {
		t.Fatal("Redo() with no children = true, want false")
	}
}

func TestEmptyTransactionCommitIsNoOp(t *testing.T) {
	buf := text.NewBuffer([]byte("x"))
	tree := New()
	before := tree.CurrentSeq()

	r := Begin(buf, "noop")
	seq := r.Commit(tree)

	if seq != before {
		t.Fatalf("Commit() of empty transaction advanced seq to %d, want unchanged %d", seq, before)
	}
}

func TestBranchingUndoThenNewEditCreatesNewBranch(t *testing.T) {
	buf := text.NewBuffer([]byte(""))
	tree := New()

	r1 := Begin(buf, "a")
	r1.Insert(0, "a")
	seqA := r1.Commit(tree)

	r2 := Begin(buf, "b")
	r2.Insert(1, "b")
	r2.Commit(tree)

	Undo(tree, buf) // back to "a"

	r3 := Begin(buf, "c")
	r3.Insert(1, "c")
	seqC := r3.Commit(tree)

	if got := buf.Text(0, buf.Len()); got != "ac" {
		t.Fatalf("after branching edit = %q, want %q", got, "ac")
	}

	// Undo back to "a"; redo then prefers the newer branch (c), not the
	// abandoned one (b).
	Undo(tree, buf)
	if !Redo(tree, buf) {
		t.Fatal("Redo() after branch = false")
	}
	if got := buf.Text(0, buf.Len()); got != "ac" {
		t.Fatalf("redo landed on wrong branch: %q", got)
	}
	if tree.CurrentSeq() != seqC {
		t.Fatalf("CurrentSeq() = %d, want %d", tree.CurrentSeq(), seqC)
	}

	// Goto back to the "b" branch explicitly.
	seqB := seqA + 1
	if err := Goto(tree, buf, seqB); err != nil {
		t.Fatalf("Goto(%d) error: %v", seqB, err)
	}
	if got := buf.Text(0, buf.Len()); got != "ab" {
		t.Fatalf("after Goto(b) = %q, want %q", got, "ab")
	}
}

func TestGotoUnknownSeqFails(t *testing.T) {
	buf := text.NewBuffer([]byte("x"))
	tree := New()
	if err := Goto(tree, buf, 999); err == nil {
		t.Fatal("Goto() with unknown seq succeeded, want error")
	}
}

func TestCheckpointRoundTrip(t *testing.T) {
	buf := text.NewBuffer([]byte(""))
	tree := New()

	r := Begin(buf, "a")
	r.Insert(0, "a")
	seq := r.Commit(tree)

	tree.Checkpoint("milestone")
	got, ok := tree.CheckpointSeq("milestone")
	if !ok || got != seq {
		t.Fatalf("CheckpointSeq() = (%d, %v), want (%d, true)", got, ok, seq)
	}
}
