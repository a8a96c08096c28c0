package job

import (
	"time"

	"github.com/fsnotify/fsnotify"
)

// ExternalChange is the Custom payload a WatchJob sends when the
// watched file is modified outside the editor.
type ExternalChange struct {
	DocumentID string
	Path       string
}

// WatchJob is a long-running job (it never sends Finished on its own)
// that watches a document's on-disk file for changes made outside the
// editor, so the editor can warn before an overwrite. It stops when
// cancelled, which is the only way this job ends.
type WatchJob struct {
	DocumentID string
	Path       string
}

func (j *WatchJob) Run(id int, sender chan<- Message, signal *CancelSignal) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		sender <- Message{ID: id, Kind: Errored, Err: err}
		return
	}
	defer watcher.Close()

	if err := watcher.Add(j.Path); err != nil {
		sender <- Message{ID: id, Kind: Errored, Err: err}
		return
	}

	poll := time.NewTicker(200 * time.Millisecond)
	defer poll.Stop()

	for {
		select {
		case <-poll.C:
			if signal.IsCancelled() {
				sender <- Message{ID: id, Kind: Cancelled}
				return
			}
		case event, ok := <-watcher.Events:
			if !ok {
				sender <- Message{ID: id, Kind: Cancelled}
				return
			}
			if signal.IsCancelled() {
				sender <- Message{ID: id, Kind: Cancelled}
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Remove) {
				sender <- Message{ID: id, Kind: Custom, Payload: ExternalChange{
					DocumentID: j.DocumentID, Path: j.Path,
				}}
			}
		case err, ok := <-watcher.Errors:
			if !ok || signal.IsCancelled() {
				sender <- Message{ID: id, Kind: Cancelled}
				return
			}
			sender <- Message{ID: id, Kind: Errored, Err: err}
		}
	}
}

func (j *WatchJob) IsSilent() bool { return true }
