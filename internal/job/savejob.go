package job

import (
	"path/filepath"

	"github.com/ehrlich-b/wtedit/internal/interfaces"
)

// SaveResult is the Custom payload a SaveJob sends on success.
type SaveResult struct {
	DocumentID string
	Revision   int
	Path       string
}

// SaveJob writes a document's bytes to disk atomically: write to a
// sibling temp file, flush+sync it, then rename over the real path,
// so a crash or power loss never leaves a half-written file in place
// (spec §4.8/§6, ported from the teacher's file_operations::
// FileSaveJob).
type SaveJob struct {
	DocumentID string
	Bytes      []byte
	Path       string
	Revision   int
	FS         interfaces.FileSystem
}

func (j *SaveJob) Run(id int, sender chan<- Message, signal *CancelSignal) {
	tempPath := filepath.Join(filepath.Dir(j.Path), "."+filepath.Base(j.Path)+".tmp")

	if signal.IsCancelled() {
		sender <- Message{ID: id, Kind: Cancelled}
		return
	}

	if err := j.FS.WriteFile(tempPath, j.Bytes, 0o644); err != nil {
		_ = j.FS.Remove(tempPath)
		sender <- Message{ID: id, Kind: Errored, Err: err}
		return
	}

	if signal.IsCancelled() {
		_ = j.FS.Remove(tempPath)
		sender <- Message{ID: id, Kind: Cancelled}
		return
	}

	if err := j.FS.Fsync(tempPath); err != nil {
		_ = j.FS.Remove(tempPath)
		sender <- Message{ID: id, Kind: Errored, Err: err}
		return
	}

	if err := j.FS.Rename(tempPath, j.Path); err != nil {
		_ = j.FS.Remove(tempPath)
		sender <- Message{ID: id, Kind: Errored, Err: err}
		return
	}

	sender <- Message{ID: id, Kind: Custom, Payload: SaveResult{
		DocumentID: j.DocumentID, Revision: j.Revision, Path: j.Path,
	}}
	sender <- Message{ID: id, Kind: Finished, Success: true}
}

func (j *SaveJob) IsSilent() bool { return true }
