// Package nfa provides a mutable nondeterministic finite automaton over
// symbol-range transitions.
//
// States form a flat arena indexed by StateID; automata always start in
// state 0. Transitions are labeled by inclusive symbol ranges, and
// ε-transitions are kept as a separate edge kind per state. A state
// becomes accepting when an output symbol is attached to it; when
// several accepting states later fuse during determinization, the
// lowest-ordered output wins.
//
// An NDFA is owned by a single constructing context. Once handed to the
// DFA compiler it should be treated as consumed.
package nfa

import (
	"cmp"

	"github.com/coregx/rangelex/internal/sparse"
	"github.com/coregx/rangelex/symbol"
)

// StateID uniquely identifies a state within one automaton.
type StateID uint32

// Transition is a range-labeled edge to a target state.
type Transition[S symbol.Countable[S]] struct {
	Range  symbol.Range[S]
	Target StateID
}

type state[S symbol.Countable[S], O cmp.Ordered] struct {
	transitions []Transition[S]
	epsilons    []StateID
	output      O
	hasOutput   bool
}

// NDFA is a mutable nondeterministic automaton over symbols S producing
// outputs O on its accepting states.
type NDFA[S symbol.Countable[S], O cmp.Ordered] struct {
	states []state[S, O]
}

// New creates an empty NDFA containing only the start state 0.
func New[S symbol.Countable[S], O cmp.Ordered]() *NDFA[S, O] {
	return &NDFA[S, O]{states: make([]state[S, O], 1)}
}

// CountStates returns one plus the highest allocated state id.
func (n *NDFA[S, O]) CountStates() StateID {
	return StateID(len(n.states))
}

// AddState allocates a fresh state and returns its id.
func (n *NDFA[S, O]) AddState() StateID {
	id := StateID(len(n.states))
	n.states = append(n.states, state[S, O]{})
	return id
}

// ensure grows the arena so that id is a valid state.
func (n *NDFA[S, O]) ensure(id StateID) {
	for StateID(len(n.states)) <= id {
		n.states = append(n.states, state[S, O]{})
	}
}

// AddTransition adds a range-labeled edge from one state to another.
// States referenced beyond the current arena are allocated implicitly.
func (n *NDFA[S, O]) AddTransition(from StateID, rng symbol.Range[S], to StateID) {
	n.ensure(from)
	n.ensure(to)
	n.states[from].transitions = append(n.states[from].transitions, Transition[S]{Range: rng, Target: to})
}

// AddEpsilon adds an ε-edge from one state to another.
func (n *NDFA[S, O]) AddEpsilon(from, to StateID) {
	n.ensure(from)
	n.ensure(to)
	n.states[from].epsilons = append(n.states[from].epsilons, to)
}

// SetOutput marks a state as accepting with the given output symbol.
func (n *NDFA[S, O]) SetOutput(id StateID, output O) {
	n.ensure(id)
	n.states[id].output = output
	n.states[id].hasOutput = true
}

// Output returns the output symbol of a state, if it is accepting.
func (n *NDFA[S, O]) Output(id StateID) (O, bool) {
	var zero O
	if int(id) >= len(n.states) {
		return zero, false
	}
	s := &n.states[id]
	return s.output, s.hasOutput
}

// TransitionsFor returns the non-ε transitions leaving a state.
// The returned slice aliases the automaton and is valid until the next
// mutation.
func (n *NDFA[S, O]) TransitionsFor(id StateID) []Transition[S] {
	if int(id) >= len(n.states) {
		return nil
	}
	return n.states[id].transitions
}

// EpsilonsFor returns the ε-edge targets leaving a state.
func (n *NDFA[S, O]) EpsilonsFor(id StateID) []StateID {
	if int(id) >= len(n.states) {
		return nil
	}
	return n.states[id].epsilons
}

// Closure returns the ε-closure of the given states: every state
// reachable from the set through any number of ε-edges, including the
// set itself. The result is sorted ascending.
func (n *NDFA[S, O]) Closure(ids []StateID) []StateID {
	set := sparse.NewSet(uint32(len(n.states)))
	var stack []StateID
	for _, id := range ids {
		if int(id) < len(n.states) && !set.Contains(uint32(id)) {
			set.Insert(uint32(id))
			stack = append(stack, id)
		}
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, target := range n.states[id].epsilons {
			if !set.Contains(uint32(target)) {
				set.Insert(uint32(target))
				stack = append(stack, target)
			}
		}
	}

	sorted := set.SortedValues()
	out := make([]StateID, len(sorted))
	for i, v := range sorted {
		out[i] = StateID(v)
	}
	return out
}
