// Package terminal abstracts the editor's terminal backend behind the
// interface spec §6 describes, so the editor's main loop never talks
// to bubbletea directly. Raw mode and the alternate screen are entered
// at Init and unconditionally restored by Deinit, the same init/defer
// discipline the teacher's tea.Program Run/Quit lifecycle gives for
// free.
package terminal

import (
	"time"

	"github.com/ehrlich-b/wtedit/internal/keymap"
)

// Terminal is the abstract backend the editor drives. Concrete
// implementations own raw-mode/alt-screen lifecycle and key decoding;
// the editor only ever sees Key values and byte writes.
type Terminal interface {
	Init() error
	Deinit() error

	// Poll blocks up to timeout waiting for the next input event and
	// reports whether one arrived. On true, ReadKey returns it.
	Poll(timeout time.Duration) bool
	ReadKey() (keymap.Key, error)

	Write(b []byte) error
	Size() (rows, cols int)

	ClearScreen() error
	MoveCursor(row, col int) error
	HideCursor() error
	ShowCursor() error
	ClearToEndOfLine() error

	Color
}

// Color is the terminal's SGR color extension, kept as a separate
// interface per spec §6 ("extension for color") so a backend that
// can't do color can still satisfy the base Terminal contract.
type Color interface {
	SetForeground(code string) error
	SetBackground(code string) error
	ResetColor() error
}
