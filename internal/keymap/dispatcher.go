package keymap

// Result is what one Dispatcher.Step call produces: either a resolved
// command (with its leading count folded in) or no-op, either because
// a digit was consumed into the count or because the sequence is
// still pending / was unmatched and cleared.
type Result struct {
	Command  string
	Count    int
	Keys     []Key // the full key sequence that resolved Command, for dot-repeat
	Matched  bool
	Cleared  bool // the pending sequence was reset because of a dead end
	IsNoop   bool
}

// Dispatcher holds one key-sequence trie per Mode plus a Global trie
// consulted when the mode-specific trie has no match, the pending
// sequence accumulated so far, and a Normal-mode leading count.
type Dispatcher struct {
	tries  map[Mode]*Trie
	global *Trie

	pending []Key
	count   int
}

func NewDispatcher() *Dispatcher {
	d := &Dispatcher{
		tries:  map[Mode]*Trie{},
		global: NewTrie(),
	}
	for _, m := range []Mode{Normal, Insert, Command, Search, Overlay} {
		d.tries[m] = NewTrie()
	}
	return d
}

// Bind registers a sequence in a specific mode's trie.
func (d *Dispatcher) Bind(mode Mode, keys []Key, command string) {
	d.tries[mode].Bind(keys, command)
}

// BindGlobal registers a sequence consulted in every mode when the
// mode-specific trie doesn't match.
func (d *Dispatcher) BindGlobal(keys []Key, command string) {
	d.global.Bind(keys, command)
}

// Pending returns the in-progress key sequence, for status-line
// display ("g" waiting for a second key).
func (d *Dispatcher) Pending() []Key { return append([]Key(nil), d.pending...) }

// PendingCount returns the leading numeric count accumulated so far
// (0 when none has been typed).
func (d *Dispatcher) PendingCount() int { return d.count }

// Reset clears pending sequence and count, used by Esc/Ctrl+] routing.
func (d *Dispatcher) Reset() {
	d.pending = nil
	d.count = 0
}

// Step translates one keypress. It is the dispatcher's core: a
// (mode, pending, key) -> (new pending, command) transition, with the
// pending sequence and count carried as dispatcher state rather than
// threaded explicitly by the caller.
func (d *Dispatcher) Step(mode Mode, key Key) Result {
	if mode == Normal && len(d.pending) == 0 && key.IsDigit() && (d.count > 0 || key.Digit() != 0) {
		d.count = d.count*10 + key.Digit()
		return Result{IsNoop: true}
	}

	seq := append(append([]Key{}, d.pending...), key)

	res := d.tries[mode].Lookup(seq)
	if res.Kind == MatchNone {
		if g := d.global.Lookup(seq); g.Kind != MatchNone {
			res = g
		}
	}

	switch res.Kind {
	case MatchExact, MatchAmbiguous:
		count := d.count
		if count == 0 {
			count = 1
		}
		d.pending = nil
		d.count = 0
		return Result{Command: res.Command, Count: count, Keys: seq, Matched: true}
	case MatchPrefix:
		d.pending = seq
		return Result{IsNoop: true}
	default:
		cleared := len(d.pending) > 0
		d.pending = nil
		d.count = 0
		return Result{IsNoop: true, Cleared: cleared}
	}
}
