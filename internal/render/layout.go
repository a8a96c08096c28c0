package render

import (
	"unicode"

	"golang.org/x/text/width"

	"github.com/ehrlich-b/wtedit/internal/search"
	"github.com/ehrlich-b/wtedit/internal/text"
)

// RenderItem is a single character flowing through the layout
// pipeline, carrying the code-point offset it came from in the buffer
// so later stages (syntax highlight, search highlight) can look it up
// without re-scanning the line. internal/text.Buffer addresses
// everything by code point rather than byte, so unlike the code this
// is ported from, CharOffset is a char offset, not a byte offset.
type RenderItem struct {
	Char       rune
	Fg, Bg     Color
	CharOffset int
}

// LayoutItem is the pipeline's final output: a character plus the
// number of terminal columns it occupies once tabs are expanded and
// wide runes are accounted for.
type LayoutItem struct {
	Char   rune
	Fg, Bg Color
	Width  int
}

// BuildLine reads one buffer line into a flat slice of RenderItems.
// Grounded on the teacher's pipeline's LineSource, which walks a
// line's characters tagging each with its byte offset; this package
// does the same thing eagerly into a slice rather than as a lazy
// iterator, since Go's buffer API already returns whole-line text.
func BuildLine(buf *text.Buffer, line int) []RenderItem {
	start := buf.LineStart(line)
	end := buf.LineEnd(line)
	runes := []rune(buf.Text(start, end))

	items := make([]RenderItem, 0, len(runes))
	for i, r := range runes {
		items = append(items, RenderItem{Char: r, CharOffset: start + i})
	}
	return items
}

// HighlightSpan is one syntax-highlight range, tagging a code-point
// range of the buffer with a capture name (e.g. "keyword", "string")
// that the caller resolves to a color.
type HighlightSpan struct {
	Start, End int
	Capture    string
}

// ApplySyntax colors items whose code-point offset falls within a highlight
// span, using colorFor to map a capture name to a color. Mirrors the
// teacher's SyntaxDecorator: spans are assumed sorted by Start and are
// scanned with a single forward cursor, never rewound.
func ApplySyntax(items []RenderItem, spans []HighlightSpan, colorFor func(capture string) Color) []RenderItem {
	if len(spans) == 0 || colorFor == nil {
		return items
	}
	idx := 0
	for i := range items {
		off := items[i].CharOffset
		for idx < len(spans) && spans[idx].End <= off {
			idx++
		}
		if idx < len(spans) && spans[idx].Start <= off && off < spans[idx].End {
			if c := colorFor(spans[idx].Capture); c != "" {
				items[i].Fg = c
			}
		}
	}
	return items
}

// ApplySearch colors items covered by a search match with the theme's
// search highlight colors. Mirrors the teacher's SearchDecorator.
func ApplySearch(items []RenderItem, matches []search.Match, theme Theme) []RenderItem {
	if len(matches) == 0 {
		return items
	}
	idx := 0
	for i := range items {
		off := items[i].CharOffset
		for idx < len(matches) && matches[idx].End <= off {
			idx++
		}
		if idx < len(matches) {
			m := matches[idx]
			if m.Start <= off && off < m.End {
				items[i].Fg, items[i].Bg = theme.SearchFg, theme.SearchBg
			}
		}
	}
	return items
}

// LayoutTabs expands tabs and assigns a display width to every item.
// Mirrors the teacher's TabLayout: a tab occupies tabWidth - (col %
// tabWidth) columns, control characters occupy 2, other non-printable
// runes occupy 4, newlines occupy 0, everything else is measured with
// the East Asian width property.
func LayoutTabs(items []RenderItem, tabWidth int) []LayoutItem {
	if tabWidth <= 0 {
		tabWidth = 1
	}
	out := make([]LayoutItem, 0, len(items))
	col := 0
	for _, it := range items {
		w := runeWidth(it.Char, col, tabWidth)
		out = append(out, LayoutItem{Char: it.Char, Fg: it.Fg, Bg: it.Bg, Width: w})
		col += w
	}
	return out
}

// CursorColumn returns the visual column of the buffer's cursor within
// its own line, accounting for tab expansion and wide runes the same
// way LayoutTabs does. Grounded on the teacher's
// render::calculate_cursor_column, which walks the line summing
// display widths up to the cursor's char offset rather than using the
// char offset itself as the column.
func CursorColumn(buf *text.Buffer, line, tabWidth int) int {
	if line < 0 || line >= buf.LineCount() {
		return 0
	}
	lineStart := buf.LineStart(line)
	target := buf.Cursor() - lineStart
	if target <= 0 {
		return 0
	}

	col := 0
	visualCol := 0
	runes := []rune(buf.Text(lineStart, buf.LineEnd(line)))
	for i, r := range runes {
		if i >= target {
			break
		}
		if r == '\n' {
			break
		}
		visualCol += runeWidth(r, col, tabWidth)
		col = visualCol
	}
	return visualCol
}

func runeWidth(r rune, col, tabWidth int) int {
	switch r {
	case '\t':
		return tabWidth - (col % tabWidth)
	case '\n':
		return 0
	}
	if r < 0x20 || r == 0x7f {
		return 2 // ^C-style caret rendering
	}
	if !unicode.IsPrint(r) {
		return 4 // \xNN-style raw byte rendering
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
