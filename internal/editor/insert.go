package editor

import (
	"github.com/ehrlich-b/wtedit/internal/document"
	"github.com/ehrlich-b/wtedit/internal/keymap"
	"github.com/ehrlich-b/wtedit/internal/undo"
)

// handleInsertKey processes one keypress while Mode == Insert,
// grounded on original_source/src/editor.rs's insert-mode branch: most
// keys splice a character or newline at the cursor; Escape closes the
// session and returns to Normal mode. Every edit is accumulated into
// s.insertRecorder so the whole typing session commits as one undo
// transaction, matching vim's behavior of undoing an entire insert in
// one "u" rather than one keystroke at a time.
func handleInsertKey(s *State, key keymap.Key) {
	doc := s.ActiveDocument()
	if doc == nil {
		return
	}

	if key.Kind == keymap.KeyEscape {
		finishInsertSession(s, doc)
		return
	}

	recorder := s.activeInsertRecorder(doc)

	switch key.Kind {
	case keymap.KeyChar:
		pos := doc.Buffer.Cursor()
		recorder.Insert(pos, string(key.Char))
		doc.Buffer.SetCursor(pos + 1)
	case keymap.KeyEnter:
		pos := doc.Buffer.Cursor()
		recorder.Insert(pos, "\n")
		doc.Buffer.SetCursor(pos + 1)
	case keymap.KeyTab:
		pos := doc.Buffer.Cursor()
		recorder.Insert(pos, "\t")
		doc.Buffer.SetCursor(pos + 1)
	case keymap.KeyBackspace:
		pos := doc.Buffer.Cursor()
		if pos == 0 {
			return
		}
		recorder.Delete(pos-1, pos)
		doc.Buffer.SetCursor(pos - 1)
	case keymap.KeyDelete:
		pos := doc.Buffer.Cursor()
		if end := pos + 1; end <= doc.Buffer.Len() {
			recorder.Delete(pos, end)
		}
	case keymap.KeyArrowLeft:
		moveLeft(doc, 1)
	case keymap.KeyArrowRight:
		moveRight(doc, 1)
	case keymap.KeyArrowUp:
		moveUp(doc, 1)
	case keymap.KeyArrowDown:
		moveDown(doc, 1)
	default:
		return
	}

	if !s.DotRepeat.IsReplaying() {
		s.DotRepeat.RecordInsertKey(keymap.Replayable{Keys: []keymap.Key{key}, Count: 1})
	}
	syncViewport(s, doc)
}

// activeInsertRecorder returns the in-progress recorder for this
// Insert session, opening one on the first edit.
func (s *State) activeInsertRecorder(doc *document.Document) *undo.Recorder {
	if s.insertRecorder == nil {
		s.insertRecorder = undo.Begin(doc.Buffer, "insert")
	}
	return s.insertRecorder
}

func finishInsertSession(s *State, doc *document.Document) {
	if s.insertRecorder != nil {
		s.insertRecorder.Commit(doc.History)
		s.insertRecorder = nil
	}
	if !s.DotRepeat.IsReplaying() {
		s.DotRepeat.FinishInsertRecording()
	}
	s.Mode = keymap.Normal
}
