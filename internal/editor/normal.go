package editor

import (
	"github.com/ehrlich-b/wtedit/internal/component"
	"github.com/ehrlich-b/wtedit/internal/document"
	"github.com/ehrlich-b/wtedit/internal/keymap"
	"github.com/ehrlich-b/wtedit/internal/search"
	"github.com/ehrlich-b/wtedit/internal/undo"
)

// ApplyNormalCommand executes one resolved Normal-mode command name
// (as bound in keys.go) against the active document, grounded on
// original_source/src/editor.rs's match over its Command enum. Pure
// motions fall through without touching the undo tree; edits open an
// undo.Recorder so they commit as one undo unit, and the repeatable
// ones feed DotRepeat so "." can play them back.
func ApplyNormalCommand(s *State, cmd string, count int, keys []keymap.Key) {
	if count <= 0 {
		count = 1
	}
	doc := s.ActiveDocument()
	if doc == nil {
		return
	}

	switch cmd {
	case "move_left":
		moveLeft(doc, count)
	case "move_right":
		moveRight(doc, count)
	case "move_up":
		moveUp(doc, count)
	case "move_down":
		moveDown(doc, count)
	case "move_line_start":
		moveLineStart(doc)
	case "move_line_end":
		moveLineEnd(doc)
	case "move_buffer_start":
		moveBufferStart(doc)
	case "move_buffer_end":
		moveBufferEnd(doc)
	case "page_up":
		pageUp(doc, s.Viewport)
	case "page_down":
		pageDown(doc, s.Viewport)
	case "word_next":
		wordNext(doc, count)
	case "word_prev":
		wordPrev(doc, count)
	case "paragraph_next":
		paragraphNext(doc)
	case "paragraph_prev":
		paragraphPrev(doc)

	case "enter_insert":
		enterInsertMode(s, keymap.Replayable{Keys: keys, Count: count})
	case "enter_insert_after":
		moveRight(doc, 1)
		enterInsertMode(s, keymap.Replayable{Keys: keys, Count: count})
	case "enter_insert_line_end":
		moveLineEnd(doc)
		enterInsertMode(s, keymap.Replayable{Keys: keys, Count: count})
	case "enter_insert_line_start":
		moveLineStart(doc)
		enterInsertMode(s, keymap.Replayable{Keys: keys, Count: count})
	case "open_line_below":
		openLineBelow(s, doc)
		enterInsertMode(s, keymap.Replayable{Keys: keys, Count: count})
	case "open_line_above":
		openLineAbove(s, doc)
		enterInsertMode(s, keymap.Replayable{Keys: keys, Count: count})

	case "delete_char":
		deleteChar(s, doc, count, keys)
	case "delete_char_before":
		deleteCharBefore(s, doc, count, keys)
	case "delete_line":
		deleteLine(s, doc, count, keys)
	case "delete_to_line_end":
		deleteToLineEnd(s, doc, keys)

	case "undo":
		undoOnce(s, doc)
	case "redo":
		redoOnce(s, doc)

	case "dot_repeat":
		replayDot(s)

	case "enter_command_mode":
		enterPrompt(s, keymap.Command, ':')
	case "enter_search_forward":
		s.SearchDir = search.Forward
		enterPrompt(s, keymap.Search, '/')
	case "enter_search_backward":
		s.SearchDir = search.Backward
		enterPrompt(s, keymap.Search, '?')
	case "search_next":
		runSearch(s, s.SearchDir)
	case "search_prev":
		runSearch(s, oppositeDirection(s.SearchDir))

	case "quit":
		if !s.CloseActive(0) {
			s.Notifications.Push("error", "unsaved changes (use :q! to discard)")
		}
	}

	syncViewport(s, doc)
}

func syncViewport(s *State, doc *document.Document) {
	pos := doc.Buffer.Cursor()
	line := doc.Buffer.LineAt(pos)
	col := pos - doc.Buffer.LineStart(line)
	s.Viewport.Update(line, doc.Buffer.LineCount())
	s.Viewport.UpdateHorizontal(col)
}

func oppositeDirection(d search.Direction) search.Direction {
	if d == search.Forward {
		return search.Backward
	}
	return search.Forward
}

// enterInsertMode switches to Insert mode and opens a DotRepeat
// recording keyed by the keys that triggered it, so "." can replay
// "enter insert here, then everything typed" as one unit.
func enterInsertMode(s *State, entry keymap.Replayable) {
	s.Mode = keymap.Insert
	if !s.DotRepeat.IsReplaying() {
		s.DotRepeat.StartInsertRecording(entry)
	}
}

// openLineBelow/openLineAbove insert a fresh blank line and move the
// cursor onto it, as the first half of "o"/"O" (the second half is
// entering Insert mode, done by the caller).
func openLineBelow(s *State, doc *document.Document) {
	line := doc.Buffer.LineAt(doc.Buffer.Cursor())
	pos := doc.Buffer.LineEnd(line)
	rec := undo.Begin(doc.Buffer, "open_line_below")
	rec.Insert(pos, "\n")
	rec.Commit(doc.History)
	doc.Buffer.SetCursor(pos + 1)
}

func openLineAbove(s *State, doc *document.Document) {
	line := doc.Buffer.LineAt(doc.Buffer.Cursor())
	pos := doc.Buffer.LineStart(line)
	rec := undo.Begin(doc.Buffer, "open_line_above")
	rec.Insert(pos, "\n")
	rec.Commit(doc.History)
	doc.Buffer.SetCursor(pos)
}

func deleteChar(s *State, doc *document.Document, count int, keys []keymap.Key) {
	pos := doc.Buffer.Cursor()
	end := pos + count
	if max := doc.Buffer.Len(); end > max {
		end = max
	}
	if end <= pos {
		return
	}
	rec := undo.Begin(doc.Buffer, "delete_char")
	rec.Delete(pos, end)
	rec.Commit(doc.History)
	doc.Buffer.SetCursor(pos)
	recordRepeat(s, keys, count)
}

func deleteCharBefore(s *State, doc *document.Document, count int, keys []keymap.Key) {
	pos := doc.Buffer.Cursor()
	start := pos - count
	if start < 0 {
		start = 0
	}
	if start >= pos {
		return
	}
	rec := undo.Begin(doc.Buffer, "delete_char_before")
	rec.Delete(start, pos)
	rec.Commit(doc.History)
	doc.Buffer.SetCursor(start)
	recordRepeat(s, keys, count)
}

func deleteLine(s *State, doc *document.Document, count int, keys []keymap.Key) {
	line := doc.Buffer.LineAt(doc.Buffer.Cursor())
	lastLine := line + count - 1
	if max := doc.Buffer.LineCount() - 1; lastLine > max {
		lastLine = max
	}
	start := doc.Buffer.LineStart(line)
	end := doc.Buffer.LineEnd(lastLine)
	if end <= start {
		return
	}
	rec := undo.Begin(doc.Buffer, "delete_line")
	rec.Delete(start, end)
	rec.Commit(doc.History)
	doc.Buffer.SetCursor(start)
	recordRepeat(s, keys, count)
}

func deleteToLineEnd(s *State, doc *document.Document, keys []keymap.Key) {
	pos := doc.Buffer.Cursor()
	line := doc.Buffer.LineAt(pos)
	start, lineEnd := doc.Buffer.LineStart(line), doc.Buffer.LineEnd(line)
	end := start + lineTextLen(doc.Buffer, start, lineEnd)
	if end <= pos {
		return
	}
	rec := undo.Begin(doc.Buffer, "delete_to_line_end")
	rec.Delete(pos, end)
	rec.Commit(doc.History)
	doc.Buffer.SetCursor(pos)
	recordRepeat(s, keys, 1)
}

func recordRepeat(s *State, keys []keymap.Key, count int) {
	if s.DotRepeat.IsReplaying() || len(keys) == 0 {
		return
	}
	s.DotRepeat.RecordSingle(keymap.Replayable{Keys: keys, Count: count})
}

func undoOnce(s *State, doc *document.Document) {
	undo.Undo(doc.History, doc.Buffer)
}

func redoOnce(s *State, doc *document.Document) {
	undo.Redo(doc.History, doc.Buffer)
}

// replayDot feeds the last recorded action's keys back through the
// normal key-processing entry point (ProcessKey, in loop.go), guarded
// by the replaying flag so the replay itself is not re-recorded.
func replayDot(s *State) {
	replayables, ok := s.DotRepeat.Replay()
	if !ok {
		return
	}
	s.DotRepeat.SetReplaying(true)
	defer s.DotRepeat.SetReplaying(false)
	for _, r := range replayables {
		for _, k := range r.Keys {
			ProcessKey(s, k)
		}
	}
	// An insert-session replay leaves Mode stuck at Insert, since the
	// original Escape that closed it was never part of the recording
	// (DotRepeat.FinishInsertRecording discards it). Close the session
	// explicitly instead of replaying a synthetic key.
	if s.Mode == keymap.Insert {
		if doc := s.ActiveDocument(); doc != nil {
			finishInsertSession(s, doc)
		}
	}
}

// enterPrompt opens the Command or Search overlay line, switching
// Mode so the main loop routes subsequent keys to it instead of the
// Normal-mode dispatcher.
func enterPrompt(s *State, mode keymap.Mode, prefix rune) {
	s.Mode = mode
	s.Prompt = component.NewInputLine(prefix)
	s.Prompt.SetWidth(s.lastCols)
}

func runSearch(s *State, dir search.Direction) {
	doc := s.ActiveDocument()
	if doc == nil || s.SearchQuery == "" {
		return
	}
	match, err := search.FindNext(doc.Buffer, doc.Buffer.Cursor(), s.SearchQuery, dir, s.Settings.Get().SearchSmartcase)
	if err != nil || match == nil {
		s.Notifications.Push("error", "no match")
		return
	}
	doc.Buffer.SetCursor(match.Start)
	syncViewport(s, doc)
}
