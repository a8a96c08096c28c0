package job

import (
	"github.com/ehrlich-b/wtedit/internal/piece"
)

// WarmJob rebuilds a buffer's byte/char/line shadow map in the
// background, the same cache internal/text.Buffer.InstallLineCache
// installs once the job completes (spec §4.7a, ported from the
// teacher's cache-warming job).
//
// Snapshot is a byte-for-byte copy of the buffer's content taken on
// the main thread at spawn time, not a live *text.Buffer pointer: the
// piece table's AVL tree mutates existing nodes in place on Insert/
// Delete (internal/piece/node.go's rotateLeft/rotateRight), so walking
// the live tree from this job's own goroutine while the main thread
// keeps editing would race. original_source/src/job_manager/jobs/
// cache_warming.rs takes the same precaution by moving an owned
// PieceTable value into the job rather than sharing a reference.
type WarmJob struct {
	Snapshot []byte
	Revision int
}

func (j *WarmJob) Run(id int, sender chan<- Message, signal *CancelSignal) {
	if signal.IsCancelled() {
		sender <- Message{ID: id, Kind: Cancelled}
		return
	}

	t := piece.New(j.Snapshot)
	m := piece.BuildByteLineMap(t, j.Revision)

	if signal.IsCancelled() {
		sender <- Message{ID: id, Kind: Cancelled}
		return
	}

	sender <- Message{ID: id, Kind: Custom, Payload: m}
	sender <- Message{ID: id, Kind: Finished, Success: true}
}

func (j *WarmJob) IsSilent() bool { return true }
