package editor

import (
	"bytes"

	"github.com/ehrlich-b/wtedit/internal/keymap"
	"github.com/ehrlich-b/wtedit/internal/render"
)

// buildFrame turns the current State into a render.FrameInput, the
// read-only snapshot RenderSystem.Render expects (spec §4.8/§5
// "rendering reads editor state and buffer contents only, never
// mutates"). The caller is responsible for having already called
// syncViewport so Viewport reflects the cursor's current position.
func buildFrame(s *State) render.FrameInput {
	doc := s.ActiveDocument()
	settings := s.Settings.Get()

	in := render.FrameInput{
		Viewport:        s.Viewport,
		Theme:           render.DefaultTheme(),
		TabWidth:        settings.TabWidth,
		ShowLineNumbers: settings.ShowLineNumbers,
		Notification: render.NotificationDrawState{
			Generation: s.Notifications.Generation(),
			Count:      s.Notifications.Count(),
		},
		SearchMatches: s.SearchMatch,
		NeedsClear:    s.needsClear,
	}
	s.needsClear = false

	if doc != nil {
		in.Buf = doc.Buffer
		pos := doc.Buffer.Cursor()
		line := doc.Buffer.LineAt(pos)
		col := pos - doc.Buffer.LineStart(line)
		in.Status = render.StatusDrawState{
			Mode:             s.Mode.String(),
			PendingKey:       formatPendingKeys(s.Dispatcher.Pending()),
			PendingCount:     s.Dispatcher.PendingCount(),
			FileName:         doc.DisplayName(),
			IsDirty:          doc.Dirty(),
			Cursor:           render.CursorInfo{Row: line - s.Viewport.TopLine(), Col: col - s.Viewport.LeftCol()},
			TotalLines:       doc.Buffer.LineCount(),
			Cols:             s.Viewport.VisibleCols(),
			SearchQuery:      s.SearchQuery,
			SearchMatchIndex: searchMatchIndex(s, pos),
			SearchTotalCount: len(s.SearchMatch),
		}
	}

	if s.Prompt != nil {
		_, promptCol, _ := s.Prompt.CursorPosition()
		in.Command = &render.CommandDrawState{
			Content:   string(promptPrefix(s.Mode)) + s.Prompt.Value(),
			Cursor:    render.CursorInfo{Row: 0, Col: promptCol},
			Width:     s.lastCols,
			Height:    1,
			HasBorder: false,
		}
	}

	return in
}

func promptPrefix(mode keymap.Mode) rune {
	if mode == keymap.Search {
		return '/'
	}
	return ':'
}

// formatPendingKeys renders an in-progress key sequence for the status
// line ("g" while waiting for a second "g"); only plain characters
// have a meaningful single-glyph rendering, so every special key
// renders as a '~' placeholder instead of being dropped silently.
func formatPendingKeys(keys []keymap.Key) string {
	out := make([]byte, 0, len(keys))
	for _, k := range keys {
		if k.Kind == keymap.KeyChar {
			out = append(out, []byte(string(k.Char))...)
		} else {
			out = append(out, '~')
		}
	}
	return string(out)
}

func searchMatchIndex(s *State, pos int) int {
	for i, m := range s.SearchMatch {
		if m.Start == pos {
			return i + 1
		}
	}
	return 0
}

// renderFrame builds this frame's FrameInput, paints it, and writes
// the resulting diff plus hardware cursor position to the terminal.
func renderFrame(s *State) error {
	changes, cursor := s.Render.Render(buildFrame(s))
	if len(changes) > 0 {
		var buf bytes.Buffer
		render.Emit(&buf, changes)
		if err := s.Term.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return s.Term.MoveCursor(cursor.Row, cursor.Col)
}
