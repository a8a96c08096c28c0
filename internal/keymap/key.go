// Package keymap implements the modal key dispatcher (spec C8): a
// per-mode trie of key sequences to command names, a pending-sequence
// and leading-count parser, special-key pre-routing, and dot-repeat
// recording/replay.
package keymap

// KeyKind discriminates the cases of Key. Key is a plain comparable
// struct (not an interface) so it can be used directly as a map key
// in the trie's children.
type KeyKind int

const (
	KeyChar KeyKind = iota
	KeyCtrl
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyCtrlArrowUp
	KeyCtrlArrowDown
	KeyCtrlArrowLeft
	KeyCtrlArrowRight
	KeyHome
	KeyEnd
	KeyCtrlHome
	KeyCtrlEnd
	KeyPageUp
	KeyPageDown
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyEscape
	KeyTab
	KeyResize
)

// Key is a single keypress event, translated from the terminal
// backend's native key representation (internal/terminal). A
// KeyResize carries the new terminal size in Rows/Cols instead of
// Char/Ctrl.
type Key struct {
	Kind       KeyKind
	Char       rune // valid when Kind == KeyChar
	Ctrl       byte // valid when Kind == KeyCtrl: the base ASCII letter
	Rows, Cols int  // valid when Kind == KeyResize
}

func Char(r rune) Key       { return Key{Kind: KeyChar, Char: r} }
func Ctrl(b byte) Key       { return Key{Kind: KeyCtrl, Ctrl: b} }
func Special(k KeyKind) Key { return Key{Kind: k} }
func Resize(rows, cols int) Key {
	return Key{Kind: KeyResize, Rows: rows, Cols: cols}
}

// IsDigit reports whether the key is a bare character '0'-'9', used
// by the dispatcher to accumulate a leading count in Normal mode.
func (k Key) IsDigit() bool {
	return k.Kind == KeyChar && k.Char >= '0' && k.Char <= '9'
}

func (k Key) Digit() int {
	return int(k.Char - '0')
}
