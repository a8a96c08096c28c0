package render

// Cell is one terminal character slot: a display rune plus the colors
// it should be painted with. Color is a plain string (lipgloss.Color's
// underlying type), so the zero value means "no override" and two
// cells compare equal by value — required for Diff to detect "nothing
// changed" without caring whether a color came from the same pointer.
type Cell struct {
	Char   rune
	Fg, Bg Color
}

var blankCell = Cell{Char: ' '}

// Layer is a fixed-size grid of cells painted by a single entity.
// Cells outside anything drawn onto the layer stay blank so a
// compositor can tell "not painted here" from "painted blank."
type Layer struct {
	Width, Height int
	cells         []Cell
	painted       []bool
}

// NewLayer returns a layer of the given size, entirely unpainted.
func NewLayer(width, height int) *Layer {
	return &Layer{
		Width: width, Height: height,
		cells:   make([]Cell, width*height),
		painted: make([]bool, width*height),
	}
}

func (l *Layer) idx(row, col int) (int, bool) {
	if row < 0 || row >= l.Height || col < 0 || col >= l.Width {
		return 0, false
	}
	return row*l.Width + col, true
}

// Set paints one cell. Out-of-bounds coordinates are silently dropped,
// matching the "render tolerates invalid state but never corrects it"
// invariant: a layout bug shows up as a clipped line, not a panic.
func (l *Layer) Set(row, col int, c Cell) {
	if i, ok := l.idx(row, col); ok {
		l.cells[i] = c
		l.painted[i] = true
	}
}

// SetText paints a run of cells starting at (row, col), one per rune
// in text, sharing fg/bg.
func (l *Layer) SetText(row, col int, text string, fg, bg Color) {
	c := col
	for _, r := range text {
		l.Set(row, c, Cell{Char: r, Fg: fg, Bg: bg})
		c++
	}
}

// Clear unpaints every cell in the layer.
func (l *Layer) Clear() {
	for i := range l.cells {
		l.cells[i] = Cell{}
		l.painted[i] = false
	}
}

func (l *Layer) at(row, col int) (Cell, bool) {
	i, ok := l.idx(row, col)
	if !ok || !l.painted[i] {
		return Cell{}, false
	}
	return l.cells[i], true
}

// At is the exported form of at, for callers outside this package
// (e.g. component tests) that need to inspect what a layer painted.
func (l *Layer) At(row, col int) (Cell, bool) { return l.at(row, col) }

// Compositor merges layers by LayerPriority into one frame, then
// diffs consecutive frames so the terminal backend only has to repaint
// what changed.
type Compositor struct {
	width, height int
	layers        map[LayerPriority]*Layer
	order         []LayerPriority
	prevFrame     *Layer
}

// NewCompositor returns a compositor sized to the given terminal
// dimensions with no layers registered.
func NewCompositor(width, height int) *Compositor {
	return &Compositor{
		width: width, height: height,
		layers: make(map[LayerPriority]*Layer),
		order:  []LayerPriority{LayerContent, LayerStatusBar, LayerFloatingWindow, LayerNotification},
	}
}

// SetSize resizes the compositor and every layer it owns, dropping any
// previous frame so the next Composite forces a full repaint.
func (c *Compositor) SetSize(width, height int) {
	c.width, c.height = width, height
	for p, l := range c.layers {
		_ = p
		newLayer := NewLayer(width, height)
		c.layers[p] = newLayer
		_ = l
	}
	c.prevFrame = nil
}

// Layer returns (creating if necessary) the layer for a priority.
func (c *Compositor) Layer(p LayerPriority) *Layer {
	l, ok := c.layers[p]
	if !ok {
		l = NewLayer(c.width, c.height)
		c.layers[p] = l
	}
	return l
}

// ClearLayer unpaints one layer, e.g. when a floating window closes.
func (c *Compositor) ClearLayer(p LayerPriority) {
	if l, ok := c.layers[p]; ok {
		l.Clear()
	}
}

// Composite paints every registered layer in priority order (content
// first, notifications last) onto a single frame. A cell painted by a
// higher-priority layer wins; an unpainted cell falls through to the
// layer below it, and an unpainted cell in every layer is blank.
func (c *Compositor) Composite() *Layer {
	out := NewLayer(c.width, c.height)
	for _, p := range c.order {
		l, ok := c.layers[p]
		if !ok {
			continue
		}
		for row := 0; row < c.height; row++ {
			for col := 0; col < c.width; col++ {
				if cell, painted := l.at(row, col); painted {
					out.Set(row, col, cell)
				}
			}
		}
	}
	for i, p := range out.painted {
		if !p {
			out.cells[i] = blankCell
			out.painted[i] = true
		}
	}
	return out
}

// CellChange is one cell whose content differs from the previous
// frame, in row-major order so the diff emitter can batch adjacent
// changes into a single cursor move.
type CellChange struct {
	Row, Col int
	Cell     Cell
}

// Diff composites the current frame and returns every cell that
// differs from the last frame Diff was called with. The first call
// after construction or a SetSize always returns every cell, since a
// full redraw is always safe (and required when there's no prior
// frame to compare against).
func (c *Compositor) Diff() []CellChange {
	frame := c.Composite()
	var changes []CellChange

	if c.prevFrame == nil {
		for row := 0; row < frame.Height; row++ {
			for col := 0; col < frame.Width; col++ {
				cell, _ := frame.at(row, col)
				changes = append(changes, CellChange{Row: row, Col: col, Cell: cell})
			}
		}
		c.prevFrame = frame
		return changes
	}

	for row := 0; row < frame.Height; row++ {
		for col := 0; col < frame.Width; col++ {
			next, _ := frame.at(row, col)
			prev, _ := c.prevFrame.at(row, col)
			if next != prev {
				changes = append(changes, CellChange{Row: row, Col: col, Cell: next})
			}
		}
	}
	c.prevFrame = frame
	return changes
}

// ForceRedraw drops the cached previous frame so the next Diff returns
// every cell, used when the terminal reports it was cleared externally.
func (c *Compositor) ForceRedraw() { c.prevFrame = nil }
