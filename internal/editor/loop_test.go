package editor

import (
	"testing"
	"time"

	"github.com/ehrlich-b/wtedit/internal/document"
	"github.com/ehrlich-b/wtedit/internal/job"
	"github.com/ehrlich-b/wtedit/internal/undo"
)

type fakeJob struct {
	fn func(id int, sender chan<- job.Message, signal *job.CancelSignal)
}

func (f *fakeJob) Run(id int, sender chan<- job.Message, signal *job.CancelSignal) {
	f.fn(id, sender, signal)
}
func (f *fakeJob) IsSilent() bool { return true }

func waitUntil(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("condition never became true")
}

func TestApplyLoadResultReplacesDocumentContent(t *testing.T) {
	s := newTestState()
	doc := s.ActiveDocument()

	applyLoadResult(s, job.LoadResult{
		DocumentID: doc.ID,
		Path:       "ignored-by-this-test.txt",
		Normalized: []byte("hello\nworld"),
	})

	if got := doc.Buffer.Text(0, doc.Buffer.Len()); got != "hello\nworld" {
		t.Fatalf("Text() = %q, want %q", got, "hello\nworld")
	}
	if doc.Dirty() {
		t.Fatalf("Dirty() = true right after a load, want false")
	}
	if _, ok := s.watchJobs[doc.ID]; !ok {
		t.Fatalf("watchJobs has no entry for %s after a load", doc.ID)
	}
}

func TestDrainJobsAppliesSaveResult(t *testing.T) {
	s := newTestState()
	doc := s.ActiveDocument()
	rec := undo.Begin(doc.Buffer, "test")
	rec.Insert(0, "x")
	rec.Commit(doc.History)

	if !doc.Dirty() {
		t.Fatalf("Dirty() = false right after an edit, want true")
	}

	s.Jobs.Spawn(&fakeJob{fn: func(id int, sender chan<- job.Message, signal *job.CancelSignal) {
		sender <- job.Message{ID: id, Kind: job.Finished, Payload: job.SaveResult{
			DocumentID: doc.ID,
			Revision:   doc.Revision(),
			Path:       "out.txt",
		}}
	}})

	waitUntil(t, func() bool {
		drainJobs(s)
		return !doc.Dirty()
	})
}

func TestCheckQuitBarrierWaitsForPendingSave(t *testing.T) {
	s := newTestState()
	id := s.Jobs.Spawn(&fakeJob{fn: func(id int, sender chan<- job.Message, signal *job.CancelSignal) {
		time.Sleep(5 * time.Millisecond)
		sender <- job.Message{ID: id, Kind: job.Finished}
	}})
	s.pendingQuitJobID = id
	s.hasPendingQuit = true

	checkQuitBarrier(s)
	if s.ShouldQuit {
		t.Fatalf("ShouldQuit = true before the save job finished")
	}

	waitUntil(t, func() bool {
		drainJobs(s)
		checkQuitBarrier(s)
		return s.ShouldQuit
	})
}

func TestFindDocument(t *testing.T) {
	s := newTestState()
	other := document.New("other-doc")
	s.AddDocument(other)

	if got := findDocument(s, "other-doc"); got != other {
		t.Fatalf("findDocument did not return the matching document")
	}
	if got := findDocument(s, "nonexistent"); got != nil {
		t.Fatalf("findDocument(%q) = %v, want nil", "nonexistent", got)
	}
}

func TestResizeRecordsTerminalSize(t *testing.T) {
	s := newTestState()
	s.Resize(40, 100)

	if s.lastRows != 40 || s.lastCols != 100 {
		t.Fatalf("lastRows/Cols = %d/%d, want 40/100", s.lastRows, s.lastCols)
	}
}
