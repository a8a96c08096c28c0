package render

// Viewport tracks which rectangle of the buffer is visible. It only
// ever scrolls by whole rows/columns when the cursor leaves the
// visible range; it never re-centers the cursor in the window. That
// asymmetry (vertical and horizontal scroll both exist, but neither
// tries to keep the cursor centered) is carried over unresolved from
// the code this is ported from and is a known, documented gap rather
// than a bug: a very long line still requires many keystrokes to
// scroll fully into view.
type Viewport struct {
	topLine      int
	leftCol      int
	visibleRows  int
	visibleCols  int
}

// NewViewport returns a viewport showing the top-left corner of the
// buffer with the given dimensions.
func NewViewport(rows, cols int) *Viewport {
	return &Viewport{visibleRows: rows, visibleCols: cols}
}

// Update scrolls the viewport vertically so cursorLine stays visible.
func (v *Viewport) Update(cursorLine, totalLines int) {
	if cursorLine < v.topLine {
		v.topLine = cursorLine
	}
	bottomLine := v.topLine + max(v.visibleRows-1, 0)
	if cursorLine > bottomLine && bottomLine < totalLines {
		v.topLine = cursorLine - max(v.visibleRows-1, 0)
	}
	if v.topLine > totalLines {
		v.topLine = max(totalLines-1, 0)
	}
	if v.topLine < 0 {
		v.topLine = 0
	}
}

// UpdateHorizontal scrolls the viewport by whole columns so cursorCol
// stays visible, using the same leave-the-range-then-jump rule as
// Update rather than re-centering.
func (v *Viewport) UpdateHorizontal(cursorCol int) {
	if cursorCol < v.leftCol {
		v.leftCol = cursorCol
	}
	rightCol := v.leftCol + max(v.visibleCols-1, 0)
	if cursorCol > rightCol {
		v.leftCol = cursorCol - max(v.visibleCols-1, 0)
	}
	if v.leftCol < 0 {
		v.leftCol = 0
	}
}

func (v *Viewport) TopLine() int     { return v.topLine }
func (v *Viewport) LeftCol() int     { return v.leftCol }
func (v *Viewport) VisibleRows() int { return v.visibleRows }
func (v *Viewport) VisibleCols() int { return v.visibleCols }

func (v *Viewport) SetSize(rows, cols int) {
	v.visibleRows = rows
	v.visibleCols = cols
}
