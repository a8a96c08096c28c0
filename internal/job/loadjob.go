package job

import (
	"github.com/ehrlich-b/wtedit/internal/document"
	"github.com/ehrlich-b/wtedit/internal/interfaces"
)

// LoadResult is the Custom payload a LoadJob sends on success.
type LoadResult struct {
	DocumentID string
	Path       string
	Normalized []byte
	LineEnding document.LineEnding
}

// LoadJob reads a file off disk and normalizes its line endings in
// the background, so opening a large file doesn't stall the render
// loop (spec §4.7a, ported from the teacher's file_operations::FileLoadJob).
type LoadJob struct {
	DocumentID string
	Path       string
	FS         interfaces.FileSystem
}

func (j *LoadJob) Run(id int, sender chan<- Message, signal *CancelSignal) {
	raw, err := j.FS.ReadFile(j.Path)
	if err != nil {
		sender <- Message{ID: id, Kind: Errored, Err: err}
		return
	}

	if signal.IsCancelled() {
		sender <- Message{ID: id, Kind: Cancelled}
		return
	}

	normalized, ending := document.NormalizeLineEndings(raw)

	sender <- Message{ID: id, Kind: Custom, Payload: LoadResult{
		DocumentID: j.DocumentID, Path: j.Path, Normalized: normalized, LineEnding: ending,
	}}
	sender <- Message{ID: id, Kind: Finished, Success: true}
}

func (j *LoadJob) IsSilent() bool { return true }
