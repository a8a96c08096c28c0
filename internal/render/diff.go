package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Emit writes the escape sequences needed to apply a set of cell
// changes to the real terminal: for each changed cell, move the
// cursor there, then write the rune styled with lipgloss. Adjacent
// changes on the same row are coalesced into a single run so the
// cursor only moves once per contiguous stretch, the same batching
// the teacher's renderer.go gets implicitly from rendering whole
// styled strings rather than per-cell escape codes.
func Emit(w io.Writer, changes []CellChange) {
	var run []CellChange
	flush := func() {
		if len(run) == 0 {
			return
		}
		first := run[0]
		fmt.Fprintf(w, "\x1b[%d;%dH", first.Row+1, first.Col+1)
		w.Write([]byte(renderRun(run)))
		run = run[:0]
	}

	for _, c := range changes {
		if len(run) > 0 {
			last := run[len(run)-1]
			if c.Row != last.Row || c.Col != last.Col+1 {
				flush()
			}
		}
		run = append(run, c)
	}
	flush()
}

// renderRun styles a contiguous horizontal stretch of cells, grouping
// consecutive cells that share a style into one lipgloss.Render call
// rather than one per rune.
func renderRun(run []CellChange) string {
	var b strings.Builder
	start := 0
	for i := 1; i <= len(run); i++ {
		if i == len(run) || run[i].Cell.Fg != run[start].Cell.Fg || run[i].Cell.Bg != run[start].Cell.Bg {
			b.WriteString(styleFor(run[start].Cell).Render(textOf(run[start:i])))
			start = i
		}
	}
	return b.String()
}

func textOf(run []CellChange) string {
	var b strings.Builder
	for _, c := range run {
		ch := c.Cell.Char
		if ch == 0 {
			ch = ' '
		}
		b.WriteRune(ch)
	}
	return b.String()
}

func styleFor(c Cell) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c.Fg != "" {
		style = style.Foreground(c.Fg)
	}
	if c.Bg != "" {
		style = style.Background(c.Bg)
	}
	return style
}
