package nfa

import (
	"sort"

	"github.com/coregx/rangelex/symbol"
)

// FixOverlappingRanges rewrites the automaton so that any two
// transition range labels are either identical or disjoint, which the
// DFA compiler requires. Transitions to different targets may still
// share a label.
//
// The breakpoint set is computed globally over every range label in the
// machine: each range contributes its low bound and the successor of
// its high bound. Every transition is then split at the breakpoints
// falling inside its range. Splitting against the global set, rather
// than per state, means two transitions anywhere in the machine either
// carry identical labels or disjoint ones, so subset construction can
// group transitions by label equality.
//
// The language of the automaton is unchanged. This is a total operation
// on any finite NDFA over a countable alphabet.
func (n *NDFA[S, O]) FixOverlappingRanges() {
	var breakpoints []S
	seen := make(map[S]struct{})
	add := func(s S) {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			breakpoints = append(breakpoints, s)
		}
	}

	any := false
	for i := range n.states {
		for _, t := range n.states[i].transitions {
			any = true
			add(t.Range.Low)
			// A range reaching the top of the alphabet has no
			// breakpoint above it.
			if next, err := t.Range.High.Next(); err == nil {
				add(next)
			}
		}
	}
	if !any {
		return
	}

	sort.Slice(breakpoints, func(i, j int) bool {
		return breakpoints[i].Compare(breakpoints[j]) < 0
	})

	for i := range n.states {
		old := n.states[i].transitions
		if len(old) == 0 {
			continue
		}
		fixed := make([]Transition[S], 0, len(old))
		for _, t := range old {
			fixed = append(fixed, splitAt(t, breakpoints)...)
		}
		n.states[i].transitions = fixed
	}
}

// splitAt cuts a transition's range at every breakpoint strictly inside
// it, producing one transition per atomic sub-range.
func splitAt[S symbol.Countable[S]](t Transition[S], breakpoints []S) []Transition[S] {
	out := []Transition[S]{}
	cur := t.Range

	// Find the first breakpoint strictly above cur.Low.
	i := sort.Search(len(breakpoints), func(i int) bool {
		return breakpoints[i].Compare(cur.Low) > 0
	})
	for ; i < len(breakpoints); i++ {
		b := breakpoints[i]
		if b.Compare(cur.High) > 0 {
			break
		}
		// b is strictly inside (cur.Low, cur.High], so pred(b) exists
		// and is at least cur.Low.
		hi, err := b.Prev()
		if err != nil {
			break
		}
		out = append(out, Transition[S]{Range: symbol.Range[S]{Low: cur.Low, High: hi}, Target: t.Target})
		cur = symbol.Range[S]{Low: b, High: cur.High}
	}
	out = append(out, Transition[S]{Range: cur, Target: t.Target})
	return out
}
