package render

import (
	"fmt"

	"github.com/ehrlich-b/wtedit/internal/search"
	"github.com/ehrlich-b/wtedit/internal/text"
)

// FrameInput is everything RenderSystem needs to build one frame. It
// holds only reads of editor state (per the "rendering reads editor
// state and buffer contents only, never mutates" invariant) — the
// caller is responsible for having already updated the Viewport.
type FrameInput struct {
	Buf      *text.Buffer
	Viewport *Viewport
	Theme    Theme

	TabWidth        int
	ShowLineNumbers bool

	Status  StatusDrawState
	Command *CommandDrawState // nil when not in Command/Search mode

	Notification NotificationDrawState

	Highlights    []HighlightSpan
	SearchMatches []search.Match

	NeedsClear bool
}

// RenderSystem turns a FrameInput into layer paints on a Compositor,
// using World/ComponentStorage as scratch state for one frame (per
// the teacher's render/ecs.rs: "an ephemeral world rebuilt every
// frame") and RenderCache to skip repainting layers whose draw state
// hasn't changed since the last frame.
type RenderSystem struct {
	world      *World
	cache      RenderCache
	compositor *Compositor
}

// NewRenderSystem returns a system painting into a compositor of the
// given terminal size.
func NewRenderSystem(width, height int) *RenderSystem {
	return &RenderSystem{
		world:      NewWorld(),
		compositor: NewCompositor(width, height),
	}
}

// Resize must be called whenever the terminal size changes; it forces
// every layer to repaint on the next frame.
func (rs *RenderSystem) Resize(width, height int) {
	rs.compositor.SetSize(width, height)
	rs.cache.InvalidateAll()
}

// Render builds this frame's world, paints any layer whose draw state
// changed, composites, and returns the diff against the previous
// frame plus where the hardware cursor should land.
func (rs *RenderSystem) Render(in FrameInput) ([]CellChange, CursorPosition) {
	rs.world.Clear()
	if in.NeedsClear {
		rs.compositor.ForceRedraw()
	}

	width := rs.compositor.width
	height := rs.compositor.height

	content := ContentDrawState{
		Revision:         in.Buf.Revision(),
		TopLine:          in.Viewport.TopLine(),
		LeftCol:          in.Viewport.LeftCol(),
		Rows:             height,
		TabWidth:         in.TabWidth,
		ShowLineNumbers:  in.ShowLineNumbers,
		GutterWidth:      gutterWidth(in.Buf.LineCount(), in.ShowLineNumbers),
		SearchMatchCount: len(in.SearchMatches),
	}
	contentEntity := rs.world.CreateEntity()
	rs.world.AddRenderable(contentEntity, ContentRenderable{State: content})
	rs.world.AddRect(contentEntity, Rect{Row: 0, Col: 0, Height: height - 1, Width: width})
	rs.world.AddLayer(contentEntity, LayerContent)

	statusEntity := rs.world.CreateEntity()
	rs.world.AddRenderable(statusEntity, StatusBarRenderable{State: in.Status})
	rs.world.AddRect(statusEntity, Rect{Row: height - 1, Col: 0, Height: 1, Width: width})
	rs.world.AddLayer(statusEntity, LayerStatusBar)

	if in.Command != nil {
		cmdEntity := rs.world.CreateEntity()
		rs.world.AddRenderable(cmdEntity, WindowRenderable{State: *in.Command})
		rs.world.AddRect(cmdEntity, Rect{Row: height - 1, Col: 0, Height: in.Command.Height, Width: in.Command.Width})
		rs.world.AddLayer(cmdEntity, LayerFloatingWindow)
	} else {
		rs.compositor.ClearLayer(LayerFloatingWindow)
		rs.cache.InvalidateCommandLine()
	}

	notifyEntity := rs.world.CreateEntity()
	rs.world.AddRenderable(notifyEntity, NotificationRenderable{State: in.Notification})
	rs.world.AddLayer(notifyEntity, LayerNotification)

	cursor := rs.paint(in, content)

	changes := rs.compositor.Diff()
	return changes, cursor
}

func (rs *RenderSystem) paint(in FrameInput, content ContentDrawState) CursorPosition {
	cursor := CursorPosition{}

	for e, r := range rs.world.Renderables.All() {
		layer, _ := rs.world.Layers.Get(e)
		rect, _ := rs.world.Rects.Get(e)

		switch v := r.(type) {
		case ContentRenderable:
			if rs.cache.Content != nil && *rs.cache.Content == v.State {
				continue
			}
			rs.paintContent(rs.compositor.Layer(layer), in, rect)
			stateCopy := v.State
			rs.cache.Content = &stateCopy

		case StatusBarRenderable:
			if rs.cache.Status != nil && *rs.cache.Status == v.State {
				continue
			}
			rs.paintStatus(rs.compositor.Layer(layer), v.State, rect)
			stateCopy := v.State
			rs.cache.Status = &stateCopy

		case WindowRenderable:
			if rs.cache.CommandLine != nil && *rs.cache.CommandLine == v.State {
				continue
			}
			rs.paintCommand(rs.compositor.Layer(layer), v.State, rect)
			stateCopy := v.State
			rs.cache.CommandLine = &stateCopy
			cursor = CursorPosition{Row: rect.Row + v.State.Cursor.Row, Col: rect.Col + v.State.Cursor.Col}
			rs.cache.LastCommandCursor = &cursor

		case NotificationRenderable:
			if rs.cache.Notifications != nil && *rs.cache.Notifications == v.State {
				continue
			}
			rs.paintNotification(rs.compositor.Layer(layer), v.State)
			stateCopy := v.State
			rs.cache.Notifications = &stateCopy
		}
	}

	if in.Command == nil {
		line := in.Buf.LineAt(in.Buf.Cursor())
		col := CursorColumn(in.Buf, line, in.TabWidth)
		cursor = CursorPosition{
			Row: line - in.Viewport.TopLine(),
			Col: content.GutterWidth + col - in.Viewport.LeftCol(),
		}
	}
	rs.cache.LastCursorPos = &cursor
	return cursor
}

func (rs *RenderSystem) paintContent(layer *Layer, in FrameInput, rect Rect) {
	layer.Clear()
	top := in.Viewport.TopLine()
	for row := 0; row < rect.Height; row++ {
		line := top + row
		if line >= in.Buf.LineCount() {
			break
		}
		col := rect.Col
		if in.ShowLineNumbers {
			gutter := fmt.Sprintf("%*d ", gutterWidth(in.Buf.LineCount(), true)-1, line+1)
			layer.SetText(rect.Row+row, col, gutter, in.Theme.GutterFg, "")
			col += len(gutter)
		}

		items := BuildLine(in.Buf, line)
		items = ApplySyntax(items, in.Highlights, nil)
		items = ApplySearch(items, in.SearchMatches, in.Theme)
		laidOut := LayoutTabs(items, in.TabWidth)

		leftCol := in.Viewport.LeftCol()
		visualCol := 0 // column within the line, before left_col scroll is applied
		screenCol := col
		for _, it := range laidOut {
			if screenCol >= rect.Col+rect.Width {
				break
			}
			if it.Char == '\n' {
				continue
			}
			if visualCol+it.Width <= leftCol {
				visualCol += it.Width
				continue
			}
			if it.Char == '\t' {
				visualCol += it.Width
				screenCol += it.Width
				continue
			}
			fg := it.Fg
			if fg == "" {
				fg = in.Theme.EditorFg
			}
			layer.Set(rect.Row+row, screenCol, Cell{Char: it.Char, Fg: fg, Bg: it.Bg})
			visualCol += it.Width
			screenCol += it.Width
		}
	}
}

func (rs *RenderSystem) paintStatus(layer *Layer, s StatusDrawState, rect Rect) {
	layer.Clear()
	left := fmt.Sprintf(" %s %s", s.Mode, s.FileName)
	if s.IsDirty {
		left += " [+]"
	}
	right := fmt.Sprintf("%d,%d  %d lines ", s.Cursor.Row+1, s.Cursor.Col+1, s.TotalLines)
	layer.SetText(rect.Row, rect.Col, left, "", "")
	pad := s.Cols - len(right)
	if pad > len(left) {
		layer.SetText(rect.Row, rect.Col+pad, right, "", "")
	}
}

func (rs *RenderSystem) paintCommand(layer *Layer, s CommandDrawState, rect Rect) {
	layer.Clear()
	layer.SetText(rect.Row, rect.Col, s.Content, "", "")
}

func (rs *RenderSystem) paintNotification(layer *Layer, s NotificationDrawState) {
	if s.Count == 0 {
		layer.Clear()
	}
}

func gutterWidth(lineCount int, show bool) int {
	if !show {
		return 0
	}
	digits := 1
	for n := lineCount; n >= 10; n /= 10 {
		digits++
	}
	return digits + 1
}
