package keymap

// Action is the outcome of PreRoute: whether a keypress short-circuits
// normal trie dispatch entirely (spec §4.6 "special routing").
type Action int

const (
	ActionContinue Action = iota
	ActionSkipAndRender
	ActionExitInsertMode
)

// PreRoute handles the handful of keys that must be intercepted
// before sequence translation, regardless of what's bound in the
// trie: Esc always clears pending state and returns to Normal
// (Insert mode additionally commits its transaction, the caller's
// responsibility on ActionExitInsertMode); Ctrl+] clears pending
// without a mode change; '?' toggles the debug overlay in Normal
// mode only.
func (d *Dispatcher) PreRoute(mode Mode, key Key, toggleDebug func()) Action {
	switch mode {
	case Insert:
		if key.Kind == KeyEscape {
			d.Reset()
			return ActionExitInsertMode
		}
		return ActionContinue
	default:
		switch {
		case key.Kind == KeyEscape:
			d.Reset()
			return ActionSkipAndRender
		case key.Kind == KeyCtrl && key.Ctrl == ']':
			d.Reset()
			return ActionSkipAndRender
		case mode == Normal && key.Kind == KeyChar && key.Char == '?':
			if toggleDebug != nil {
				toggleDebug()
			}
			return ActionSkipAndRender
		default:
			return ActionContinue
		}
	}
}
