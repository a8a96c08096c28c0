package command

// Kind identifies which ex-command variant a Parsed carries. Only the
// fields documented per Kind are meaningful.
type Kind int

const (
	Unknown Kind = iota
	Ambiguous
	Quit
	Write
	WriteQuit
	Edit
	Set
	SetLocal
	Notify
	Redraw
	BufferNext
	BufferPrev
	BufferList
	NoHighlight
	Substitute
	Undo
	UndoGoto
	Redo
	Checkpoint
	UndoTree
	Explore
	Terminal
)

// Parsed is the parser's output: an ex-command ready for the
// executor. It is a flat struct rather than a sum type so the parser
// can be written without per-variant allocation; unused fields for a
// given Kind are zero.
type Parsed struct {
	Kind Kind
	Name string // Unknown: the rejected verb or usage message

	Prefix  string   // Ambiguous: the input prefix
	Matches []string // Ambiguous: candidate canonical names

	Bangs int

	Path string // Write/WriteQuit/Edit/Explore: optional file path

	Option   string // Set/SetLocal: canonical option name
	Value    string // Set/SetLocal: raw value string, untyped
	HasValue bool

	NotifyKind string
	Message    string

	Count    *int // Redo: optional repeat count
	Seq      *int // UndoGoto: target sequence number
	HasUndoN bool // Undo: whether args[0] parsed as a count

	Pattern     string // Substitute
	Replacement string
	Flags       string
	Range       string // "" = current line, "%" = whole buffer

	Cmd string // Terminal: optional shell command
}
