package editor

import "github.com/ehrlich-b/wtedit/internal/keymap"

// BindDefaultKeys registers wtedit's Normal/Insert/Command/Search
// bindings. Command names mirror original_source/src/command.rs's
// Command enum (MoveLeft, MoveRight, EnterInsertMode, DeleteChar, ...)
// and original_source/src/action/mod.rs's richer Motion set
// (word/paragraph/page motions), translated to the snake_case string
// names this dispatcher's trie carries instead of a closed Rust enum.
func BindDefaultKeys(d *keymap.Dispatcher) {
	bindNormal := func(cmd string, keys ...keymap.Key) { d.Bind(keymap.Normal, keys, cmd) }

	bindNormal("move_left", keymap.Char('h'))
	bindNormal("move_left", keymap.Special(keymap.KeyArrowLeft))
	bindNormal("move_right", keymap.Char('l'))
	bindNormal("move_right", keymap.Special(keymap.KeyArrowRight))
	bindNormal("move_up", keymap.Char('k'))
	bindNormal("move_up", keymap.Special(keymap.KeyArrowUp))
	bindNormal("move_down", keymap.Char('j'))
	bindNormal("move_down", keymap.Special(keymap.KeyArrowDown))

	bindNormal("move_line_start", keymap.Char('0'))
	bindNormal("move_line_start", keymap.Special(keymap.KeyHome))
	bindNormal("move_line_end", keymap.Char('$'))
	bindNormal("move_line_end", keymap.Special(keymap.KeyEnd))
	bindNormal("move_buffer_start", keymap.Char('g'), keymap.Char('g'))
	bindNormal("move_buffer_end", keymap.Char('G'))
	bindNormal("move_buffer_start", keymap.Special(keymap.KeyCtrlHome))
	bindNormal("move_buffer_end", keymap.Special(keymap.KeyCtrlEnd))

	bindNormal("page_up", keymap.Special(keymap.KeyPageUp))
	bindNormal("page_down", keymap.Special(keymap.KeyPageDown))

	bindNormal("word_next", keymap.Char('w'))
	bindNormal("word_prev", keymap.Char('b'))
	bindNormal("word_next", keymap.Special(keymap.KeyCtrlArrowRight))
	bindNormal("word_prev", keymap.Special(keymap.KeyCtrlArrowLeft))
	bindNormal("paragraph_next", keymap.Char('}'))
	bindNormal("paragraph_prev", keymap.Char('{'))

	bindNormal("enter_insert", keymap.Char('i'))
	bindNormal("enter_insert_after", keymap.Char('a'))
	bindNormal("enter_insert_line_end", keymap.Char('A'))
	bindNormal("enter_insert_line_start", keymap.Char('I'))
	bindNormal("open_line_below", keymap.Char('o'))
	bindNormal("open_line_above", keymap.Char('O'))

	bindNormal("delete_char", keymap.Char('x'))
	bindNormal("delete_char_before", keymap.Char('X'))
	bindNormal("delete_line", keymap.Char('d'), keymap.Char('d'))
	bindNormal("delete_to_line_end", keymap.Char('D'))

	bindNormal("undo", keymap.Char('u'))
	bindNormal("redo", keymap.Ctrl('r'))

	bindNormal("dot_repeat", keymap.Char('.'))

	bindNormal("enter_command_mode", keymap.Char(':'))
	bindNormal("enter_search_forward", keymap.Char('/'))
	// '?' is not bound here: Dispatcher.PreRoute intercepts it in Normal
	// mode unconditionally to toggle the debug overlay, so a trie entry
	// for it would never fire. Backward search is reached via N cycling
	// the opposite direction from an existing query.
	bindNormal("search_next", keymap.Char('n'))
	bindNormal("search_prev", keymap.Char('N'))

	bindNormal("quit", keymap.Char('q'), keymap.Char('q'))

	// KeyResize is never bound in the trie: every resize event carries a
	// different Rows/Cols pair, so as a Key struct it would never repeat
	// as a stable map key. The main loop intercepts it before dispatch.
}
