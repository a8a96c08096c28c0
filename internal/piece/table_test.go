package piece

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestNewTableByteLen(t *testing.T) {
	tb := New([]byte("hello\nworld"))
	if got := tb.ByteLen(); got != 11 {
		t.Fatalf("ByteLen() = %d, want 11", got)
	}
	if got := tb.LineCount(); got != 2 {
		t.Fatalf("LineCount() = %d, want 2", got)
	}
}

func TestInsertAppend(t *testing.T) {
	tb := New([]byte("hello"))
	tb.Insert(5, []byte(" world"))
	if got := string(tb.BytesRange(0, tb.ByteLen())); got != "hello world" {
		t.Fatalf("BytesRange = %q, want %q", got, "hello world")
	}
}

func TestInsertMiddle(t *testing.T) {
	tb := New([]byte("helloworld"))
	tb.Insert(5, []byte(" "))
	if got := string(tb.BytesRange(0, tb.ByteLen())); got != "hello world" {
		t.Fatalf("BytesRange = %q, want %q", got, "hello world")
	}
}

func TestDeleteRange(t *testing.T) {
	tb := New([]byte("hello world"))
	tb.Delete(5, 11)
	if got := string(tb.BytesRange(0, tb.ByteLen())); got != "hello" {
		t.Fatalf("BytesRange = %q, want %q", got, "hello")
	}
}

func TestLineStartOffsetAndLineAtBytePos(t *testing.T) {
	tb := New([]byte("aa\nbb\ncc"))
	offsets := []int{0, 3, 6}
	for line, want := range offsets {
		if got := tb.LineStartOffset(line); got != want {
			t.Fatalf("LineStartOffset(%d) = %d, want %d", line, got, want)
		}
	}
	for pos, want := range []int{0, 0, 0, 1, 1, 1, 2, 2} {
		if got := tb.LineAtBytePos(pos); got != want {
			t.Fatalf("LineAtBytePos(%d) = %d, want %d", pos, got, want)
		}
	}
	if got := tb.LineAtBytePos(1000); got != 2 {
		t.Fatalf("LineAtBytePos(out of range) = %d, want saturated 2", got)
	}
}

func TestCharToByteAndBack(t *testing.T) {
	tb := New([]byte("a日b"))
	// code points: a(0) 日(1) b(2); bytes: a@0, 日@1..4, b@4
	if got := tb.CharToByte(0); got != 0 {
		t.Fatalf("CharToByte(0) = %d, want 0", got)
	}
	if got := tb.CharToByte(1); got != 1 {
		t.Fatalf("CharToByte(1) = %d, want 1", got)
	}
	if got := tb.CharToByte(2); got != 4 {
		t.Fatalf("CharToByte(2) = %d, want 4", got)
	}
	if got := tb.ByteToChar(0); got != 0 {
		t.Fatalf("ByteToChar(0) = %d, want 0", got)
	}
	// byte 2 lands mid multi-byte char; must snap to the containing char.
	if got := tb.ByteToChar(2); got != 1 {
		t.Fatalf("ByteToChar(2) = %d, want 1 (containing character)", got)
	}
	if got := tb.ByteToChar(4); got != 2 {
		t.Fatalf("ByteToChar(4) = %d, want 2", got)
	}
}

func TestChunksInRangeConcatenatesToSameContent(t *testing.T) {
	tb := New([]byte("0123456789"))
	tb.Insert(5, []byte("ABCDE"))
	tb.Delete(2, 4)
	full := tb.BytesRange(0, tb.ByteLen())
	var reassembled []byte
	for _, c := range tb.ChunksInRange(0, tb.ByteLen()) {
		reassembled = append(reassembled, c...)
	}
	if !bytes.Equal(full, reassembled) {
		t.Fatalf("chunked reassembly %q != BytesRange %q", reassembled, full)
	}
}

// TestRandomEditsAgainstReferenceString performs a sequence of random
// inserts and deletes against both the piece table and a plain Go
// string, checking content and length agree after every step, which
// exercises split/merge/rebalance without asserting the tree
// invariants directly.
func TestRandomEditsAgainstReferenceString(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ref := []byte("the quick brown fox jumps over the lazy dog")
	tb := New(append([]byte(nil), ref...))

	for i := 0; i < 500; i++ {
		if len(ref) == 0 || rng.Intn(2) == 0 {
			pos := rng.Intn(len(ref) + 1)
			n := rng.Intn(5) + 1
			text := make([]byte, n)
			for j := range text {
				text[j] = byte('a' + rng.Intn(26))
			}
			tb.Insert(pos, text)
			ref = append(ref[:pos:pos], append(append([]byte{}, text...), ref[pos:]...)...)
		} else {
			start := rng.Intn(len(ref))
			end := start + rng.Intn(len(ref)-start) + 1
			tb.Delete(start, end)
			ref = append(ref[:start:start], ref[end:]...)
		}

		if tb.ByteLen() != len(ref) {
			t.Fatalf("step %d: ByteLen() = %d, want %d", i, tb.ByteLen(), len(ref))
		}
		if got := tb.BytesRange(0, tb.ByteLen()); !bytes.Equal(got, ref) {
			t.Fatalf("step %d: content mismatch\n got: %q\nwant: %q", i, got, ref)
		}
	}
}
