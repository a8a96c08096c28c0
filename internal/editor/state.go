// Package editor wires the document, search, command, keymap, job,
// render, terminal, and component packages into the running text
// editor (spec §5's "one main thread owns all editor/document/
// render/terminal state"), grounded on the teacher's internal/ui
// bubbletea model for the overall shape of a main-thread-owns-state
// program, and on original_source/src/editor.rs for the specific
// read-key/translate/execute/render loop.
package editor

import (
	"github.com/google/uuid"

	"github.com/ehrlich-b/wtedit/internal/command"
	"github.com/ehrlich-b/wtedit/internal/component"
	"github.com/ehrlich-b/wtedit/internal/config"
	"github.com/ehrlich-b/wtedit/internal/document"
	"github.com/ehrlich-b/wtedit/internal/interfaces"
	"github.com/ehrlich-b/wtedit/internal/job"
	"github.com/ehrlich-b/wtedit/internal/keymap"
	"github.com/ehrlich-b/wtedit/internal/render"
	"github.com/ehrlich-b/wtedit/internal/search"
	"github.com/ehrlich-b/wtedit/internal/terminal"
	"github.com/ehrlich-b/wtedit/internal/undo"
)

// State is every piece of mutable editor state the main loop owns.
// Nothing here is touched from another goroutine; jobs communicate
// exclusively through job.Manager's message channel (spec §5).
type State struct {
	FS       interfaces.FileSystem
	Settings *config.Manager
	Jobs     *job.Manager

	Docs   []*document.Document
	Active int

	Verbs            *command.VerbRegistry
	SettingsRegistry *command.SettingsRegistry
	Parser           *command.Parser

	Dispatcher *keymap.Dispatcher
	DotRepeat  *keymap.DotRepeat
	Mode       keymap.Mode

	Viewport *render.Viewport
	Render   *render.RenderSystem
	Term     terminal.Terminal

	Prompt  *component.InputLine
	Overlay component.Component

	Notifications *NotificationManager

	SearchQuery string
	SearchMatch []search.Match
	SearchDir   search.Direction

	DebugOverlay bool
	ShouldQuit   bool

	pendingQuitJobID int
	hasPendingQuit   bool

	watchJobs map[string]int

	// insertRecorder accumulates the undo.Transaction for the Insert
	// session currently in progress; nil when Mode != Insert or between
	// keystrokes before the first edit.
	insertRecorder *undo.Recorder

	// needsClear flags the next frame to force a full terminal repaint
	// (":redraw"), rather than relying on RenderSystem's cell diff.
	needsClear bool

	lastRows, lastCols int
}

// NewState constructs a State with every subsystem wired and bound to
// one initial, empty document, ready for Run to take over (spec §2
// OVERVIEW's "runnable editor binary").
func NewState(fs interfaces.FileSystem, settings *config.Manager, term terminal.Terminal, rows, cols int) *State {
	settingsReg := command.NewSettingsRegistry()
	verbs := command.NewVerbRegistry()
	s := &State{
		FS:               fs,
		Settings:         settings,
		Jobs:             job.NewManager(256),
		Verbs:            verbs,
		SettingsRegistry: settingsReg,
		Parser:           command.NewParser(verbs, settingsReg),
		Dispatcher:       keymap.NewDispatcher(),
		DotRepeat:        keymap.NewDotRepeat(),
		Mode:             keymap.Normal,
		Viewport:         render.NewViewport(rows-1, cols),
		Render:           render.NewRenderSystem(cols, rows),
		Term:             term,
		Notifications:    NewNotificationManager(),
		watchJobs:        map[string]int{},
		lastRows:         rows,
		lastCols:         cols,
	}
	BindDefaultKeys(s.Dispatcher)
	s.Docs = append(s.Docs, document.New(newDocumentID()))
	return s
}

// newDocumentID generates a fresh document identifier; a package-level
// wrapper around uuid.NewString so callers outside state.go don't need
// their own import of the uuid package just for this one call.
func newDocumentID() string { return uuid.NewString() }

// ActiveDocument returns the currently focused document, or nil if
// every document has been closed (the editor quits before this can
// happen in practice, but callers still check).
func (s *State) ActiveDocument() *document.Document {
	if s.Active < 0 || s.Active >= len(s.Docs) {
		return nil
	}
	return s.Docs[s.Active]
}

// NextBuffer and PrevBuffer cycle the active document (":bnext"/
// ":bprev"; no key is bound to them).
func (s *State) NextBuffer() {
	if len(s.Docs) == 0 {
		return
	}
	s.Active = (s.Active + 1) % len(s.Docs)
}

func (s *State) PrevBuffer() {
	if len(s.Docs) == 0 {
		return
	}
	s.Active = (s.Active - 1 + len(s.Docs)) % len(s.Docs)
}

// AddDocument appends a freshly constructed document (e.g. once a
// load job finishes) and focuses it.
func (s *State) AddDocument(d *document.Document) {
	s.Docs = append(s.Docs, d)
	s.Active = len(s.Docs) - 1
}

// ReplaceActiveDocument swaps out the active document in place, used
// by the CLI entry point to install a file's contents read at startup
// in place of the empty document NewState seeds by default.
func (s *State) ReplaceActiveDocument(d *document.Document) {
	if s.Active < 0 || s.Active >= len(s.Docs) {
		s.AddDocument(d)
		return
	}
	s.Docs[s.Active] = d
}

// CloseActive removes the active document if it may be closed (spec
// §4.8 "Close is refused for dirty documents unless bang count >= 1"),
// reporting whether it was actually removed.
func (s *State) CloseActive(bangs int) bool {
	doc := s.ActiveDocument()
	if doc == nil || !doc.CanClose(bangs) {
		return false
	}
	if id, ok := s.watchJobs[doc.ID]; ok {
		s.Jobs.Cancel(id)
		delete(s.watchJobs, doc.ID)
	}
	s.Docs = append(s.Docs[:s.Active], s.Docs[s.Active+1:]...)
	if s.Active >= len(s.Docs) {
		s.Active = len(s.Docs) - 1
	}
	if len(s.Docs) == 0 {
		s.ShouldQuit = true
	}
	return true
}

// Resize updates the viewport and render system when the terminal
// reports a new size.
func (s *State) Resize(rows, cols int) {
	s.lastRows, s.lastCols = rows, cols
	s.Viewport.SetSize(rows-1, cols)
	s.Render.Resize(cols, rows)
	if s.Prompt != nil {
		s.Prompt.SetWidth(cols)
	}
}
