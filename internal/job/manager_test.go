package job

import (
	"testing"
	"time"
)

type fakeJob struct {
	silent bool
	fn     func(id int, sender chan<- Message, signal *CancelSignal)
}

func (f *fakeJob) Run(id int, sender chan<- Message, signal *CancelSignal) { f.fn(id, sender, signal) }
func (f *fakeJob) IsSilent() bool                                         { return f.silent }

func drain(t *testing.T, m *Manager, want int) []Message {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	var out []Message
	for len(out) < want && time.Now().Before(deadline) {
		out = append(out, m.Poll(10)...)
		if len(out) < want {
			time.Sleep(time.Millisecond)
		}
	}
	return out
}

func TestManagerSpawnAndPollFinished(t *testing.T) {
	m := NewManager(16)
	id := m.Spawn(&fakeJob{fn: func(id int, sender chan<- Message, signal *CancelSignal) {
		sender <- Message{ID: id, Kind: Finished, Success: true}
	}})

	msgs := drain(t, m, 1)
	if len(msgs) != 1 || msgs[0].Kind != Finished || msgs[0].ID != id {
		t.Fatalf("msgs = %+v", msgs)
	}
	state, ok := m.State(id)
	if !ok || state != StateFinished {
		t.Fatalf("State(%d) = %v, %v, want StateFinished", id, state, ok)
	}
}

func TestManagerCancel(t *testing.T) {
	m := NewManager(16)
	started := make(chan struct{})
	id := m.Spawn(&fakeJob{fn: func(id int, sender chan<- Message, signal *CancelSignal) {
		close(started)
		for !signal.IsCancelled() {
			time.Sleep(time.Millisecond)
		}
		sender <- Message{ID: id, Kind: Cancelled}
	}})

	<-started
	m.Cancel(id)

	msgs := drain(t, m, 1)
	if len(msgs) != 1 || msgs[0].Kind != Cancelled {
		t.Fatalf("msgs = %+v", msgs)
	}
	state, _ := m.State(id)
	if state != StateCancelled {
		t.Fatalf("State(%d) = %v, want StateCancelled", id, state)
	}
}

func TestManagerPollReturnsEmptyWhenNothingPending(t *testing.T) {
	m := NewManager(16)
	if msgs := m.Poll(10); len(msgs) != 0 {
		t.Fatalf("Poll() = %v, want empty", msgs)
	}
}

func TestManagerPollRespectsMax(t *testing.T) {
	m := NewManager(16)
	id := m.Spawn(&fakeJob{fn: func(id int, sender chan<- Message, signal *CancelSignal) {
		for i := 0; i < 5; i++ {
			sender <- Message{ID: id, Kind: Progress}
		}
		sender <- Message{ID: id, Kind: Finished, Success: true}
	}})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if msgs := m.Poll(2); len(msgs) > 0 {
			if len(msgs) > 2 {
				t.Fatalf("Poll(2) returned %d messages, want <= 2", len(msgs))
			}
			break
		}
		time.Sleep(time.Millisecond)
	}
}
