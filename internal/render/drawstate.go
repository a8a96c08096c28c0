package render

// CursorInfo is the cursor's screen-relative row/column, tracked
// separately from the buffer's character offset so renderers can
// compare "did the displayed cursor move" without recomputing layout.
type CursorInfo struct {
	Row, Col int
}

// ContentDrawState is the minimal state that determines whether the
// text content layer needs to be repainted.
type ContentDrawState struct {
	Revision         int
	TopLine          int
	LeftCol          int
	Rows             int
	TabWidth         int
	ShowLineNumbers  bool
	GutterWidth      int
	SearchMatchCount int
	Theme            string
}

// StatusDrawState is the minimal state that determines whether the
// status bar needs to be repainted.
type StatusDrawState struct {
	Mode              string
	PendingKey        string
	PendingCount      int
	FileName          string
	IsDirty           bool
	Cursor            CursorInfo
	TotalLines        int
	Cols              int
	SearchQuery       string
	SearchMatchIndex  int
	SearchTotalCount  int
}

// CommandDrawState is the minimal state that determines whether the
// command/search prompt window needs to be repainted.
type CommandDrawState struct {
	Content    string
	Cursor     CursorInfo
	Width      int
	Height     int
	HasBorder  bool
}

// NotificationDrawState is the minimal state that determines whether
// the notification tray needs to be repainted. Generation increments
// on every notification push or clear, so equality alone tells the
// render system whether anything changed.
type NotificationDrawState struct {
	Generation int
	Count      int
}

// CursorPosition is the absolute terminal cell the compositor should
// place the hardware cursor at after painting a frame.
type CursorPosition struct {
	Row, Col int
}

// RenderCache holds the previous frame's draw states so RenderSystem
// can skip repainting a layer whose inputs haven't changed.
// Invalidate* methods force a repaint on the next frame.
type RenderCache struct {
	Content            *ContentDrawState
	Status             *StatusDrawState
	CommandLine        *CommandDrawState
	Notifications      *NotificationDrawState
	LastCommandCursor  *CursorPosition
	LastCursorPos      *CursorPosition
}

func (c *RenderCache) InvalidateAll() {
	c.Content = nil
	c.Status = nil
	c.CommandLine = nil
	c.Notifications = nil
	c.LastCommandCursor = nil
	c.LastCursorPos = nil
}

func (c *RenderCache) InvalidateContent()       { c.Content = nil }
func (c *RenderCache) InvalidateStatus()        { c.Status = nil }
func (c *RenderCache) InvalidateCommandLine()   { c.CommandLine = nil }
func (c *RenderCache) InvalidateNotifications() { c.Notifications = nil }
