// Package job implements the background job manager (spec C9): jobs
// run on their own goroutine, report progress and completion over a
// shared channel, and cooperate with cancellation by polling a
// signal at safe points.
package job

import "sync/atomic"

// CancelSignal is a cooperative cancellation flag a Job polls at safe
// points in its work loop.
type CancelSignal struct {
	cancelled atomic.Bool
}

func (s *CancelSignal) Cancel()          { s.cancelled.Store(true) }
func (s *CancelSignal) IsCancelled() bool { return s.cancelled.Load() }

// Job is one unit of background work. Run executes on its own
// goroutine and must send at least one terminal message (Finished,
// Errored, or Cancelled) on sender before returning.
type Job interface {
	Run(id int, sender chan<- Message, signal *CancelSignal)
	// IsSilent reports whether the job's completion should be
	// surfaced to the user via a notification, or applied silently
	// (cache warming, background saves).
	IsSilent() bool
}

// Kind discriminates the messages a Job can emit.
type Kind int

const (
	Started Kind = iota
	Progress
	Finished
	Errored
	Cancelled
	Custom
	TerminalOutput
	TerminalExit
)

// Message is one event from a running job. Only the fields relevant
// to Kind are populated; Payload carries the typed result for Custom
// messages (a SaveResult, LoadResult, *piece.ByteLineMap, ...)
// for the editor to type-switch on.
type Message struct {
	ID      int
	Kind    Kind
	Success bool
	Err     error
	Text    string
	Payload any
}

// State is a job's last known lifecycle state, as tracked by Manager.
type State int

const (
	StateRunning State = iota
	StateFinished
	StateCancelled
	StateFailed
)
