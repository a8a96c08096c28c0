package render

import (
	"testing"

	"github.com/ehrlich-b/wtedit/internal/text"
)

func TestRenderSystemFirstFramePaintsEverything(t *testing.T) {
	buf := text.NewBuffer([]byte("hello\nworld"))
	rs := NewRenderSystem(20, 5)
	vp := NewViewport(4, 20)

	changes, _ := rs.Render(FrameInput{
		Buf: buf, Viewport: vp, Theme: DefaultTheme(),
		TabWidth: 4, ShowLineNumbers: false,
		Status: StatusDrawState{Mode: "normal", FileName: "scratch", TotalLines: 2, Cols: 20},
	})
	if len(changes) == 0 {
		t.Fatal("expected a non-empty diff on the first frame")
	}
}

func TestRenderSystemSkipsUnchangedContentLayer(t *testing.T) {
	buf := text.NewBuffer([]byte("hello"))
	rs := NewRenderSystem(20, 5)
	vp := NewViewport(4, 20)

	in := FrameInput{
		Buf: buf, Viewport: vp, Theme: DefaultTheme(),
		TabWidth: 4, ShowLineNumbers: false,
		Status: StatusDrawState{Mode: "normal", FileName: "scratch", TotalLines: 1, Cols: 20},
	}
	rs.Render(in)
	changes, _ := rs.Render(in)
	if len(changes) != 0 {
		t.Fatalf("second identical frame produced %d changes, want 0", len(changes))
	}
}

func TestRenderSystemResizeForcesRepaint(t *testing.T) {
	buf := text.NewBuffer([]byte("hello"))
	rs := NewRenderSystem(20, 5)
	vp := NewViewport(4, 20)

	in := FrameInput{
		Buf: buf, Viewport: vp, Theme: DefaultTheme(),
		TabWidth: 4, ShowLineNumbers: false,
		Status: StatusDrawState{Mode: "normal", FileName: "scratch", TotalLines: 1, Cols: 20},
	}
	rs.Render(in)
	rs.Resize(20, 5)
	changes, _ := rs.Render(in)
	if len(changes) == 0 {
		t.Fatal("expected a repaint after Resize")
	}
}
