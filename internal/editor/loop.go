package editor

import (
	"time"

	"github.com/ehrlich-b/wtedit/internal/component"
	"github.com/ehrlich-b/wtedit/internal/document"
	"github.com/ehrlich-b/wtedit/internal/job"
	"github.com/ehrlich-b/wtedit/internal/keymap"
)

// Run drives the editor until a quit is requested: poll one input
// event, translate it, apply it, drain any finished background jobs,
// then repaint. This is the read-key/translate/execute/render cycle
// original_source/src/editor.rs's run loop follows, adapted to
// Go's explicit Poll/ReadKey split and a bounded per-frame job drain
// (spec §5's "at most N messages per frame").
func (s *State) Run() error {
	if err := s.Term.Init(); err != nil {
		return err
	}
	defer s.Term.Deinit()

	rows, cols := s.Term.Size()
	s.Resize(rows, cols)

	for !s.ShouldQuit {
		drainJobs(s)
		checkQuitBarrier(s)
		if s.ShouldQuit {
			break
		}
		if err := renderFrame(s); err != nil {
			return err
		}

		timeout := time.Duration(s.Settings.Get().JobPollTimeoutMillis) * time.Millisecond
		if !s.Term.Poll(timeout) {
			continue
		}
		key, err := s.Term.ReadKey()
		if err != nil {
			continue
		}
		if key.Kind == keymap.KeyResize {
			// Never routed through the trie (see keys.go): a resize
			// key's Rows/Cols vary every time, so it could never match
			// a stable trie binding.
			s.Resize(key.Rows, key.Cols)
			continue
		}
		ProcessKey(s, key)
	}
	return nil
}

// ProcessKey is the single entry point for applying one keypress to
// the editor, used both by Run's main loop and by dot-repeat's replay
// (normal.go's replayDot), so a replayed key is processed exactly the
// way the original keystroke was.
func ProcessKey(s *State, key keymap.Key) {
	switch s.Mode {
	case keymap.Insert:
		switch s.Dispatcher.PreRoute(keymap.Insert, key, nil) {
		case keymap.ActionExitInsertMode:
			if doc := s.ActiveDocument(); doc != nil {
				finishInsertSession(s, doc)
			}
		default:
			handleInsertKey(s, key)
		}
	case keymap.Command, keymap.Search:
		handlePromptKey(s, key)
	case keymap.Overlay:
		handleOverlayKey(s, key)
	default: // Normal
		switch s.Dispatcher.PreRoute(keymap.Normal, key, s.toggleDebugOverlay) {
		case keymap.ActionSkipAndRender:
			return
		default:
			result := s.Dispatcher.Step(keymap.Normal, key)
			if result.Matched {
				ApplyNormalCommand(s, result.Command, result.Count, result.Keys)
			}
		}
	}
}

func (s *State) toggleDebugOverlay() { s.DebugOverlay = !s.DebugOverlay }

// handleOverlayKey routes input to the active pluggable Component
// (spec §4.8) when Mode == Overlay.
func handleOverlayKey(s *State, key keymap.Key) {
	if s.Overlay == nil {
		s.Mode = keymap.Normal
		return
	}
	res := s.Overlay.HandleInput(key)
	switch res.Kind {
	case component.Ignored:
		if key.Kind == keymap.KeyEscape {
			s.Overlay = nil
			s.Mode = keymap.Normal
		}
	case component.ActionResult:
		s.Overlay = nil
		s.Mode = keymap.Normal
	}
}

// drainJobs applies up to one frame's worth of finished background
// job messages to editor state: a save/load result lands in the
// corresponding document, a watch job's external-change notice
// becomes a notification, and a warm job's freshly built line cache
// is installed back into its buffer.
func drainJobs(s *State) {
	settings := s.Settings.Get()
	for _, msg := range s.Jobs.Poll(settings.MaxMessagesPerFrame) {
		switch payload := msg.Payload.(type) {
		case job.SaveResult:
			if doc := findDocument(s, payload.DocumentID); doc != nil && doc.Revision() == payload.Revision {
				doc.MarkSaved()
			}
		case job.LoadResult:
			applyLoadResult(s, payload)
		case job.ExternalChange:
			if doc := findDocument(s, payload.DocumentID); doc != nil {
				s.Notifications.Push("warn", doc.DisplayName()+" changed on disk")
			}
		case *document.PieceByteLineMap:
			if doc := s.ActiveDocument(); doc != nil {
				doc.Buffer.InstallLineCache(payload)
			}
		default:
			if s.Overlay != nil {
				s.Overlay.HandleJobMessage(msg)
			}
		}
		if msg.Kind == job.Errored && msg.Err != nil {
			s.Notifications.Push("error", msg.Err.Error())
		}
	}
}

func findDocument(s *State, id string) *document.Document {
	for _, d := range s.Docs {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// applyLoadResult replaces the placeholder document spawnLoad created
// with the freshly read file content.
func applyLoadResult(s *State, result job.LoadResult) {
	doc := findDocument(s, result.DocumentID)
	if doc == nil {
		return
	}
	doc.Reload(result.Normalized)
	doc.Options.LineEnding = result.LineEnding
	doc.MarkSaved()
	s.Jobs.Spawn(&job.WarmJob{Snapshot: doc.Buffer.Bytes(), Revision: doc.Revision()})
	s.watchJobs[doc.ID] = s.Jobs.Spawn(&job.WatchJob{DocumentID: doc.ID, Path: result.Path})
}

// checkQuitBarrier holds ShouldQuit false after ":wq" until the
// pending save job has actually finished, per spec §4.7's quit
// barrier: "the editor must never exit with an unflushed write still
// in flight."
func checkQuitBarrier(s *State) {
	if !s.hasPendingQuit {
		return
	}
	if state, ok := s.Jobs.State(s.pendingQuitJobID); ok && state != job.StateRunning {
		s.hasPendingQuit = false
		s.ShouldQuit = true
	}
}
