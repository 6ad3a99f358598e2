package dfa

import (
	"cmp"
	"sort"

	"github.com/coregx/rangelex/symbol"
)

// Status is the execution state of a Run.
type Status int

const (
	// More means the run can still consume symbols.
	More Status = iota

	// Accepted means the run finished on an accepting prefix; Count
	// and Output report the longest one seen.
	Accepted

	// Rejected means the run finished without any accepting prefix.
	Rejected
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case More:
		return "More"
	case Accepted:
		return "Accepted"
	case Rejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// Run is a single execution of a DFA over a symbol stream. It tracks
// the longest accepting prefix seen so far; feeding symbols past the
// last accept does not lose it.
type Run[S symbol.Countable[S], O cmp.Ordered] struct {
	dfa      *DFA[S, O]
	state    StateID
	consumed int

	acceptCount  int
	acceptOutput O
	hasAccept    bool

	status Status
}

// Start begins a run of the DFA from its start state.
func (d *DFA[S, O]) Start() *Run[S, O] {
	r := &Run[S, O]{dfa: d}
	r.noteAccept()
	return r
}

func (r *Run[S, O]) noteAccept() {
	if out, ok := r.dfa.Output(r.state); ok {
		r.acceptCount = r.consumed
		r.acceptOutput = out
		r.hasAccept = true
	}
}

// Next feeds one symbol to the run. If the current state has no
// transition covering the symbol, the run finishes: Accepted when an
// accepting prefix was seen, Rejected otherwise. Feeding a finished run
// leaves it unchanged.
func (r *Run[S, O]) Next(sym S) Status {
	if r.status != More {
		return r.status
	}

	ts := r.dfa.states[r.state].transitions
	i := sort.Search(len(ts), func(i int) bool {
		return ts[i].Range.Low.Compare(sym) > 0
	})
	if i == 0 || !ts[i-1].Range.Contains(sym) {
		return r.Finish()
	}

	r.state = ts[i-1].Target
	r.consumed++
	r.noteAccept()
	return More
}

// Finish ends the run, as at end of input.
func (r *Run[S, O]) Finish() Status {
	if r.status == More {
		if r.hasAccept {
			r.status = Accepted
		} else {
			r.status = Rejected
		}
	}
	return r.status
}

// Status returns the run's current execution state.
func (r *Run[S, O]) Status() Status {
	return r.status
}

// Count returns the length of the longest accepted prefix. It is only
// meaningful once the run has finished as Accepted.
func (r *Run[S, O]) Count() int {
	return r.acceptCount
}

// Output returns the output symbol of the longest accepted prefix.
func (r *Run[S, O]) Output() (O, bool) {
	return r.acceptOutput, r.hasAccept
}

// Match executes the DFA against a reader with longest-match semantics.
// It returns the number of symbols in the longest accepted prefix and
// its output symbol, or ok == false when no prefix is accepted. The
// reader is consumed up to the first symbol the automaton cannot
// advance on.
func (d *DFA[S, O]) Match(reader symbol.Reader[S]) (count int, output O, ok bool) {
	run := d.Start()
	for run.Status() == More {
		sym, more := reader.Next()
		if !more {
			run.Finish()
			break
		}
		run.Next(sym)
	}

	if run.Status() != Accepted {
		var zero O
		return 0, zero, false
	}
	out, _ := run.Output()
	return run.Count(), out, true
}
