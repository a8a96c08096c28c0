package editor

import (
	"fmt"

	"github.com/ehrlich-b/wtedit/internal/command"
	"github.com/ehrlich-b/wtedit/internal/component"
	"github.com/ehrlich-b/wtedit/internal/document"
	"github.com/ehrlich-b/wtedit/internal/job"
	"github.com/ehrlich-b/wtedit/internal/keymap"
	"github.com/ehrlich-b/wtedit/internal/search"
	"github.com/ehrlich-b/wtedit/internal/undo"
)

// handlePromptKey routes one keypress while Mode is Command or Search
// to the active InputLine overlay, grounded on the component.Component
// contract (spec §4.8). Enter/Escape resolve to SubmitAction/
// CancelAction, which close the prompt and, on submit, hand the text
// to submitCommand or submitSearch.
func handlePromptKey(s *State, key keymap.Key) {
	if s.Prompt == nil {
		s.Mode = keymap.Normal
		return
	}
	res := s.Prompt.HandleInput(key)
	if res.Kind != component.ActionResult {
		return
	}
	mode := s.Mode
	text := ""
	cancelled := false
	switch action := res.Action.(type) {
	case component.SubmitAction:
		text = action.Text
	case component.CancelAction:
		cancelled = true
	}
	s.Prompt = nil
	s.Mode = keymap.Normal
	if cancelled {
		return
	}
	switch mode {
	case keymap.Command:
		submitCommand(s, text)
	case keymap.Search:
		submitSearch(s, text)
	}
}

// submitCommand parses and executes an ex command, folding its Result
// into concrete side effects. Executors never touch the filesystem or
// undo tree directly (spec §4.8's "executors never perform file I/O");
// this is where their declared intent becomes a spawned job or an
// undo.Undo/Redo/Goto call.
func submitCommand(s *State, line string) {
	doc := s.ActiveDocument()
	merged := s.Settings.Get()
	parsed := s.Parser.Parse(line)
	result := command.Execute(parsed, doc, s.SettingsRegistry, &merged)

	switch result.Kind {
	case command.ResultFailure:
		s.Notifications.Push("error", result.Message)
	case command.ResultSuccess:
		if parsed.Kind == command.Notify && parsed.NotifyKind == "clear" {
			s.Notifications.Clear()
		} else if result.Message != "" {
			kind := "info"
			if parsed.Kind == command.Notify {
				kind = parsed.NotifyKind
			}
			s.Notifications.Push(kind, result.Message)
		}
	case command.ResultQuit:
		if doc != nil && !doc.CanClose(result.Bangs) {
			s.Notifications.Push("error", "unsaved changes (add ! to discard)")
		} else {
			s.CloseActive(result.Bangs)
		}
	case command.ResultWrite:
		spawnSave(s, doc, result.Path, false)
	case command.ResultWriteAndQuit:
		spawnSave(s, doc, result.Path, true)
	case command.ResultEdit:
		spawnLoad(s, result.Path)
	case command.ResultBufferNext:
		s.NextBuffer()
	case command.ResultBufferPrev:
		s.PrevBuffer()
	case command.ResultBufferList:
		s.Notifications.Push("info", bufferListSummary(s))
	case command.ResultUndo:
		if doc != nil {
			undoOnce(s, doc)
		}
	case command.ResultUndoGoto:
		if doc != nil {
			if err := undo.Goto(doc.History, doc.Buffer, undo.Seq(result.Seq)); err != nil {
				s.Notifications.Push("error", err.Error())
			}
		}
	case command.ResultRedo:
		if doc != nil {
			for i := 0; i < result.Count; i++ {
				if !undo.Redo(doc.History, doc.Buffer) {
					break
				}
			}
		}
	case command.ResultNoHighlight:
		s.SearchMatch = nil
	case command.ResultRedraw:
		s.needsClear = true
	case command.ResultCheckpoint:
		if doc != nil {
			undo.Begin(doc.Buffer, "checkpoint").Commit(doc.History)
		}
	case command.ResultOpenComponent, command.ResultOpenTerminal:
		s.Notifications.Push("info", fmt.Sprintf("%s: not available in this build", result.Message))
	}

	if doc != nil {
		syncViewport(s, doc)
	}
}

func bufferListSummary(s *State) string {
	out := ""
	for i, d := range s.Docs {
		if i > 0 {
			out += ", "
		}
		marker := ""
		if i == s.Active {
			marker = "*"
		}
		out += marker + d.DisplayName()
	}
	return out
}

// spawnSave queues a SaveJob for doc, redirecting its path first when
// the command named one (":w path"/":wq path"). When quit is true the
// editor records the job id and defers ShouldQuit until the job's
// Finished message arrives (spec §4.7's quit barrier), so a slow write
// can never be silently dropped by an early exit.
func spawnSave(s *State, doc *document.Document, path string, quit bool) {
	if doc == nil {
		return
	}
	if path != "" {
		doc.SetPath(path)
	}
	p, ok := doc.Path()
	if !ok {
		s.Notifications.Push("error", "no file name")
		return
	}
	id := s.Jobs.Spawn(&job.SaveJob{
		DocumentID: doc.ID,
		Bytes:      doc.FileBytes(),
		Path:       p,
		Revision:   doc.Revision(),
		FS:         s.FS,
	})
	if quit {
		s.pendingQuitJobID = id
		s.hasPendingQuit = true
	}
}

func spawnLoad(s *State, path string) {
	if path == "" {
		s.Notifications.Push("error", "no file name")
		return
	}
	doc := document.New(newDocumentID())
	s.Jobs.Spawn(&job.LoadJob{DocumentID: doc.ID, Path: path, FS: s.FS})
	s.AddDocument(doc)
	doc.SetPath(path)
}

// submitSearch stores the query, performs the first jump, and tracks
// every match for highlight rendering (search.FindAll backs the
// highlight overlay; search.FindNext backs n/N navigation).
func submitSearch(s *State, query string) {
	s.SearchQuery = query
	doc := s.ActiveDocument()
	if doc == nil {
		return
	}
	smartcase := s.Settings.Get().SearchSmartcase
	if matches, err := search.FindAll(doc.Buffer, query, smartcase); err == nil {
		s.SearchMatch = matches
	}
	runSearch(s, s.SearchDir)
}
