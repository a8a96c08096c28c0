// Package piece implements the editor's text storage engine: an
// AVL-balanced piece table (rope over pieces) plus the code-point/byte
// addressing model layered on top of it.
package piece

import "unicode/utf8"

// Kind tags the variant a Character carries. Character is the public,
// code-point-addressed unit; Kind distinguishes how it must be measured
// and displayed.
type Kind uint8

const (
	// Printable is any decoded rune that isn't a control code, tab, or
	// newline.
	Printable Kind = iota
	// RawByte is a single byte that did not decode as valid UTF-8. It is
	// still one Character (one code-point-addressable unit) but carries
	// exactly one byte.
	RawByte
	// Control is a C0 control code other than tab and newline, or DEL
	// (rendered as ^X).
	Control
	// Tab is the horizontal tab character.
	Tab
	// Newline is the line feed character. Piece-tree nodes count these to
	// maintain per-subtree line metadata.
	Newline
)

// Character is the tagged variant described by the data model: a single
// printable code point, a raw (invalid-UTF8) byte, a control code, a tab,
// or a newline. All cursor and buffer-position arithmetic in the public
// API is expressed in Characters, never in raw bytes.
type Character struct {
	Kind Kind
	R    rune // valid for Printable, Control, Tab, Newline
	B    byte // valid for RawByte
}

// DecodeCharacter reads one Character from the front of b, returning it
// alongside the number of bytes consumed. b must be non-empty.
func DecodeCharacter(b []byte) (Character, int) {
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return Character{Kind: RawByte, B: b[0]}, 1
	}
	switch {
	case r == '\n':
		return Character{Kind: Newline, R: r}, size
	case r == '\t':
		return Character{Kind: Tab, R: r}, size
	case r < 0x20 || r == 0x7f:
		return Character{Kind: Control, R: r}, size
	default:
		return Character{Kind: Printable, R: r}, size
	}
}

// EncodedLen returns the number of bytes this Character occupies in its
// source buffer. Used by the byte shadow map to convert code-point
// offsets to byte offsets.
func (c Character) EncodedLen() int {
	if c.Kind == RawByte {
		return 1
	}
	return utf8.RuneLen(c.R)
}

// IsNewline reports whether this Character is a line terminator.
func (c Character) IsNewline() bool { return c.Kind == Newline }

// String renders the Character for display purposes, independent of any
// tab-expansion or gutter logic (those live in the render package).
func (c Character) String() string {
	switch c.Kind {
	case RawByte:
		return "\\x" + hexByte(c.B)
	case Control:
		return "^" + string(rune(c.R^0x40))
	case Tab:
		return "\t"
	case Newline:
		return "\n"
	default:
		return string(c.R)
	}
}

const hexDigits = "0123456789abcdef"

func hexByte(b byte) string {
	return string([]byte{hexDigits[b>>4], hexDigits[b&0xf]})
}
