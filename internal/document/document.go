// Package document implements the editor's document model (spec C5):
// a text buffer bound to a file path, a dirty-tracking revision pair,
// and the undo tree that records its edit history. Actual file I/O
// happens in internal/job's save/load jobs; this package only knows
// how to turn a buffer into file bytes and back (spec §4.8/§6).
package document

import (
	"fmt"
	"path/filepath"

	"github.com/ehrlich-b/wtedit/internal/piece"
	"github.com/ehrlich-b/wtedit/internal/text"
	"github.com/ehrlich-b/wtedit/internal/undo"
)

// LineEnding is the document's on-disk line-terminator convention.
type LineEnding int

const (
	LF LineEnding = iota
	CRLF
)

// Bytes returns the byte sequence this LineEnding writes for every
// newline when generating file content.
func (le LineEnding) Bytes() []byte {
	if le == CRLF {
		return []byte("\r\n")
	}
	return []byte("\n")
}

func (le LineEnding) String() string {
	if le == CRLF {
		return "crlf"
	}
	return "lf"
}

// Options are the per-document settings from spec §3's Document data
// model: tab width, expand-tabs, and line ending.
type Options struct {
	TabWidth   int
	ExpandTabs bool
	LineEnding LineEnding
}

// DefaultOptions returns the options a brand-new, unconfigured
// document gets.
func DefaultOptions() Options {
	return Options{TabWidth: 4, ExpandTabs: false, LineEnding: LF}
}

// Document is a buffer plus the file metadata, dirty tracking, and
// undo history around it (spec §3 "Document").
type Document struct {
	ID      string
	Buffer  *text.Buffer
	Options Options
	History *undo.Tree

	filePath          string
	hasPath           bool
	lastSavedRevision int
	IsReadOnly        bool

	// Syntax is an opaque handle to a compiled grammar/query supplied
	// by the (external) syntax-loading component; the core never
	// inspects it, only threads it through to the render pipeline's
	// syntax decorator.
	Syntax any
}

// New creates an empty, path-less document.
func New(id string) *Document {
	return &Document{
		ID:      id,
		Buffer:  text.NewBuffer(nil),
		Options: DefaultOptions(),
		History: undo.New(),
	}
}

// FromBytes creates a document seeded with raw file content, detecting
// the line-ending convention (first CRLF observed wins, per spec §6)
// and normalizing all newlines to LF internally.
func FromBytes(id, path string, raw []byte) *Document {
	normalized, ending := normalize(raw)
	return &Document{
		ID:                id,
		Buffer:            text.NewBuffer(normalized),
		Options:           Options{TabWidth: 4, ExpandTabs: false, LineEnding: ending},
		History:           undo.New(),
		filePath:          path,
		hasPath:           true,
		lastSavedRevision: 0,
	}
}

// NormalizeLineEndings rewrites CRLF sequences to LF and reports
// which ending convention was detected (LF unless at least one CRLF
// is seen). Exported so internal/job's load job can detect a file's
// line ending without duplicating the scan.
func NormalizeLineEndings(raw []byte) ([]byte, LineEnding) {
	return normalize(raw)
}

func normalize(raw []byte) ([]byte, LineEnding) {
	out := make([]byte, 0, len(raw))
	ending := LF
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\r' && i+1 < len(raw) && raw[i+1] == '\n' {
			ending = CRLF
			out = append(out, '\n')
			i++
			continue
		}
		out = append(out, raw[i])
	}
	return out, ending
}

// Path returns the document's file path and whether it has one.
func (d *Document) Path() (string, bool) { return d.filePath, d.hasPath }

// SetPath associates path with the document (":w path", ":saveas").
func (d *Document) SetPath(path string) { d.filePath = path; d.hasPath = true }

// DisplayName returns the base name of the file path, or "[No Name]"
// for an unsaved document.
func (d *Document) DisplayName() string {
	if !d.hasPath {
		return "[No Name]"
	}
	return filepath.Base(d.filePath)
}

// Revision returns the buffer's current edit revision.
func (d *Document) Revision() int { return d.Buffer.Revision() }

// Dirty reports whether the document has unsaved changes: revision
// differs from the revision recorded at the last successful save.
func (d *Document) Dirty() bool { return d.Buffer.Revision() != d.lastSavedRevision }

// MarkSaved records the buffer's current revision as saved. Called by
// the editor once the save job's Finished message arrives (the
// quit-barrier coordination lives in internal/editor's
// checkQuitBarrier).
func (d *Document) MarkSaved() { d.lastSavedRevision = d.Buffer.Revision() }

// CanClose reports whether the document may be closed: always true if
// clean, true for a dirty document only when bangs >= 1 (spec §4.8).
func (d *Document) CanClose(bangs int) bool {
	return !d.Dirty() || bangs >= 1
}

// Reload replaces the buffer's contents in place from freshly read
// file bytes and resets both revision counters, as if the document
// had just been opened (spec §4.8 "Reload").
func (d *Document) Reload(raw []byte) {
	normalized, ending := normalize(raw)
	d.Buffer = text.NewBuffer(normalized)
	d.Options.LineEnding = ending
	d.lastSavedRevision = 0
	d.History = undo.New()
}

// FileBytes renders the buffer's content as the bytes that belong on
// disk: every internal LF is rewritten to the document's configured
// line-ending convention. This is the pure transform; actual writing
// (temp file, flush+sync, rename) is the job manager's responsibility
// (internal/job/savejob.go's SaveJob.Run) per spec §4.8's "executors
// never perform file I/O directly."
func (d *Document) FileBytes() []byte {
	src := d.Buffer.Bytes()
	if d.Options.LineEnding == LF {
		return src
	}
	ending := d.Options.LineEnding.Bytes()
	out := make([]byte, 0, len(src)+len(src)/40)
	start := 0
	for i, b := range src {
		if b == '\n' {
			out = append(out, src[start:i]...)
			out = append(out, ending...)
			start = i + 1
		}
	}
	out = append(out, src[start:]...)
	return out
}

// TempPath returns the sibling temp file used while atomically
// writing this document's file: ".<basename>.tmp" in the same
// directory, per spec §4.8 / §6.
func (d *Document) TempPath() (string, error) {
	if !d.hasPath {
		return "", fmt.Errorf("document: no file path set")
	}
	dir := filepath.Dir(d.filePath)
	base := filepath.Base(d.filePath)
	return filepath.Join(dir, "."+base+".tmp"), nil
}

// PieceByteLineMap is a thin re-export so callers of this package
// needn't import internal/piece directly just to pass the warming
// job's cache into InstallLineCache.
type PieceByteLineMap = piece.ByteLineMap
