// Package component defines the overlay contract (spec §4.8) that
// file-explorer, undo-tree, completion, and input-box components all
// implement, plus the one concrete overlay this module ships:
// inputline.go's command/search prompt.
package component

import (
	"github.com/ehrlich-b/wtedit/internal/job"
	"github.com/ehrlich-b/wtedit/internal/keymap"
	"github.com/ehrlich-b/wtedit/internal/render"
)

// InputResult is what handle_input returns: whether the overlay
// consumed the key, and if so, an optional Action payload the editor
// should execute against its own context.
type InputResult struct {
	Kind   InputResultKind
	Action any
}

type InputResultKind int

const (
	Ignored InputResultKind = iota
	Consumed
	ActionResult
)

// EventResult is handle_job_message's return: whether the overlay
// consumed the message, and whether it wants a redraw.
type EventResult struct {
	Consumed bool
	Redraw   bool
}

// Component is the overlay contract every plug-in surface (file
// explorer, undo-tree view, completion, input box) implements.
type Component interface {
	HandleInput(key keymap.Key) InputResult
	Render(layer *render.Layer)
	CursorPosition() (row, col int, ok bool)
	HandleJobMessage(msg job.Message) EventResult
}
