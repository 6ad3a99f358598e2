// Package dfa provides the deterministic automaton produced by subset
// construction, together with its longest-match execution engine.
//
// A DFA is immutable once compiled: per state it holds a sorted list of
// pairwise disjoint symbol ranges looked up by binary search, plus an
// optional output symbol marking the state accepting. DFAs are
// value-like and freely shareable read-only across goroutines; each
// match runs in its own Run.
package dfa

import (
	"cmp"

	"github.com/coregx/rangelex/symbol"
)

// StateID identifies a state within one DFA. The start state is 0.
type StateID uint32

// Transition is a range-labeled edge to a target state.
type Transition[S symbol.Countable[S]] struct {
	Range  symbol.Range[S]
	Target StateID
}

type state[S symbol.Countable[S], O cmp.Ordered] struct {
	// transitions are sorted ascending by range and pairwise disjoint.
	transitions []Transition[S]
	output      O
	hasOutput   bool
}

// DFA is a deterministic finite automaton over symbols S with outputs O
// on its accepting states.
type DFA[S symbol.Countable[S], O cmp.Ordered] struct {
	states []state[S, O]
}

// CountStates returns the number of states in the automaton.
func (d *DFA[S, O]) CountStates() StateID {
	return StateID(len(d.states))
}

// Output returns the output symbol of a state, if it is accepting.
func (d *DFA[S, O]) Output(id StateID) (O, bool) {
	var zero O
	if int(id) >= len(d.states) {
		return zero, false
	}
	s := &d.states[id]
	return s.output, s.hasOutput
}

// TransitionsFor returns the sorted transitions leaving a state. The
// returned slice aliases the automaton and must not be mutated.
func (d *DFA[S, O]) TransitionsFor(id StateID) []Transition[S] {
	if int(id) >= len(d.states) {
		return nil
	}
	return d.states[id].transitions
}
