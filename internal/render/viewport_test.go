package render

import "testing"

func TestViewportScrollsDownWhenCursorLeavesBottom(t *testing.T) {
	v := NewViewport(5, 80)
	v.Update(10, 20)
	if v.TopLine() != 6 {
		t.Fatalf("TopLine() = %d, want 6", v.TopLine())
	}
}

func TestViewportScrollsUpWhenCursorLeavesTop(t *testing.T) {
	v := NewViewport(5, 80)
	v.Update(10, 20)
	v.Update(2, 20)
	if v.TopLine() != 2 {
		t.Fatalf("TopLine() = %d, want 2", v.TopLine())
	}
}

func TestViewportDoesNotRecenter(t *testing.T) {
	v := NewViewport(10, 80)
	v.Update(0, 100)
	v.Update(9, 100) // cursor at the last visible row, still within range
	if v.TopLine() != 0 {
		t.Fatalf("TopLine() = %d, want 0 (no recentering)", v.TopLine())
	}
}

func TestViewportHorizontalScroll(t *testing.T) {
	v := NewViewport(10, 10)
	v.UpdateHorizontal(15)
	if v.LeftCol() != 6 {
		t.Fatalf("LeftCol() = %d, want 6", v.LeftCol())
	}
}
