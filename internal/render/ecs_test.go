package render

import "testing"

func TestWorldCreateAndDestroyEntity(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.AddRect(e, Rect{Width: 10, Height: 2})
	w.AddLayer(e, LayerStatusBar)

	if _, ok := w.Rects.Get(e); !ok {
		t.Fatal("expected rect component")
	}

	w.DestroyEntity(e)
	if _, ok := w.Rects.Get(e); ok {
		t.Fatal("expected rect component removed after destroy")
	}
}

func TestWorldClearResetsEntityCounter(t *testing.T) {
	w := NewWorld()
	w.CreateEntity()
	w.CreateEntity()
	w.Clear()

	e := w.CreateEntity()
	if e != 0 {
		t.Fatalf("CreateEntity() after Clear = %d, want 0", e)
	}
}

func TestAddComponentIgnoresUnknownEntity(t *testing.T) {
	w := NewWorld()
	w.AddRect(EntityId(999), Rect{})
	if _, ok := w.Rects.Get(EntityId(999)); ok {
		t.Fatal("expected component not added for an entity that was never created")
	}
}
