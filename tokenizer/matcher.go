package tokenizer

import (
	"cmp"

	"github.com/coregx/rangelex/dfa"
	"github.com/coregx/rangelex/nfa"
	"github.com/coregx/rangelex/pattern"
	"github.com/coregx/rangelex/symbol"
)

// TokenMatcher collects (pattern, output) pairs and compiles them into
// one deterministic automaton for tokenizing.
//
// Preparing a matcher with zero patterns is valid; the resulting DFA
// rejects everything.
type TokenMatcher[S symbol.Countable[S], O cmp.Ordered] struct {
	patterns []patternEntry[S, O]
}

type patternEntry[S symbol.Countable[S], O cmp.Ordered] struct {
	pattern pattern.Pattern[S]
	output  O
}

// NewTokenMatcher creates an empty token matcher.
func NewTokenMatcher[S symbol.Countable[S], O cmp.Ordered]() *TokenMatcher[S, O] {
	return &TokenMatcher[S, O]{}
}

// AddPattern registers a pattern producing the given output symbol.
func (m *TokenMatcher[S, O]) AddPattern(p pattern.Pattern[S], output O) {
	m.patterns = append(m.patterns, patternEntry[S, O]{pattern: p, output: output})
}

// Patterns returns the registered patterns in registration order.
func (m *TokenMatcher[S, O]) Patterns() []pattern.Pattern[S] {
	out := make([]pattern.Pattern[S], len(m.patterns))
	for i, e := range m.patterns {
		out[i] = e.pattern
	}
	return out
}

// ToNDFA compiles every registered pattern into a single NDFA, each
// from the shared start state 0, and marks each pattern's accept state
// with its output. Range labels are made disjoint before returning.
func (m *TokenMatcher[S, O]) ToNDFA() *nfa.NDFA[S, O] {
	n := nfa.New[S, O]()
	for _, e := range m.patterns {
		accept := pattern.Compile(e.pattern, n, 0)
		n.SetOutput(accept, e.output)
	}
	n.FixOverlappingRanges()
	return n
}

// Prepare builds the deterministic automaton for this matcher. The DFA
// may be reused across any number of inputs.
func (m *TokenMatcher[S, O]) Prepare() (*dfa.DFA[S, O], error) {
	return dfa.Compile(m.ToNDFA())
}
