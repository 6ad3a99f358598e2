package dfa

import (
	"cmp"
	"encoding/binary"
	"sort"

	"github.com/coregx/rangelex/nfa"
	"github.com/coregx/rangelex/symbol"
)

// Compile runs subset construction over an NDFA whose range labels have
// been made disjoint (see nfa.FixOverlappingRanges) and returns the
// equivalent deterministic automaton.
//
// Each DFA state corresponds to a sorted set of NDFA states. The start
// state is the ε-closure of NDFA state 0. When several accepting NDFA
// states fuse into one DFA state, the lowest-ordered output wins.
//
// No minimization is performed; the result may contain redundant
// states.
func Compile[S symbol.Countable[S], O cmp.Ordered](n *nfa.NDFA[S, O]) (*DFA[S, O], error) {
	d := &DFA[S, O]{}

	// Powerset states already allocated, keyed by their canonical
	// (sorted) NDFA state set.
	ids := make(map[string]StateID)
	var worklist [][]nfa.StateID

	intern := func(set []nfa.StateID) StateID {
		key := setKey(set)
		if id, ok := ids[key]; ok {
			return id
		}
		id := StateID(len(d.states))
		ids[key] = id

		st := state[S, O]{}
		for _, member := range set {
			out, ok := n.Output(member)
			if !ok {
				continue
			}
			if !st.hasOutput || out < st.output {
				st.output = out
				st.hasOutput = true
			}
		}
		d.states = append(d.states, st)
		worklist = append(worklist, set)
		return id
	}

	intern(n.Closure([]nfa.StateID{0}))

	for len(worklist) > 0 {
		set := worklist[0]
		worklist = worklist[1:]
		id := ids[setKey(set)]

		// Group the members' transitions by their range label. Labels
		// are atomic by precondition, so grouping is by equality.
		targets := make(map[symbol.Range[S]][]nfa.StateID)
		var labels []symbol.Range[S]
		for _, member := range set {
			for _, t := range n.TransitionsFor(member) {
				if _, ok := targets[t.Range]; !ok {
					labels = append(labels, t.Range)
				}
				targets[t.Range] = append(targets[t.Range], t.Target)
			}
		}

		sort.Slice(labels, func(i, j int) bool { return labels[i].Compare(labels[j]) < 0 })
		for i := 1; i < len(labels); i++ {
			if labels[i-1].Overlaps(labels[i]) {
				return nil, &CompileError{
					State:   uint32(set[0]),
					Message: "overlapping range labels; run FixOverlappingRanges first",
				}
			}
		}

		transitions := make([]Transition[S], 0, len(labels))
		for _, label := range labels {
			targetSet := intern(n.Closure(targets[label]))
			transitions = append(transitions, Transition[S]{Range: label, Target: targetSet})
		}
		d.states[id].transitions = transitions
	}

	return d, nil
}

// setKey encodes a sorted NDFA state set as a map key.
func setKey(set []nfa.StateID) string {
	buf := make([]byte, 4*len(set))
	for i, id := range set {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(id))
	}
	return string(buf)
}
