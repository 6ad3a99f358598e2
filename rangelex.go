// Package rangelex builds and executes finite-state automata over
// arbitrary ordered symbol alphabets.
//
// Regular patterns (package pattern) compile into nondeterministic
// automata with range-labeled transitions (package nfa), which subset
// construction turns into immutable deterministic automata (package
// dfa). A tokenizer (package tokenizer) drives a DFA over an input to
// produce tokens annotated with the source ranges they span.
//
// This package is the thin façade: one-shot prefix matching for a
// pattern or an already-prepared DFA.
//
//	digits, _ := pattern.NewRange(symbol.Char('0'), symbol.Char('9'))
//	n, ok := rangelex.MatchesString(pattern.RepeatForever[symbol.Char](digits, 1), "42abc")
//	// n == 2, ok == true
package rangelex

import (
	"cmp"

	"github.com/coregx/rangelex/dfa"
	"github.com/coregx/rangelex/nfa"
	"github.com/coregx/rangelex/pattern"
	"github.com/coregx/rangelex/symbol"
)

// Prepare compiles a single pattern into a deterministic automaton
// whose accepting states carry no meaningful output. The DFA may be
// reused across any number of matches.
func Prepare[S symbol.Countable[S]](p pattern.Pattern[S]) (*dfa.DFA[S, int], error) {
	n := nfa.New[S, int]()
	accept := pattern.Compile(p, n, 0)
	n.SetOutput(accept, 0)
	n.FixOverlappingRanges()
	return dfa.Compile(n)
}

// Matches reports the length of the longest prefix of the reader
// accepted by the pattern, or ok == false when no prefix is accepted.
// The pattern is compiled for this one call; use Prepare plus
// MatchesPrepared to match many inputs.
func Matches[S symbol.Countable[S]](p pattern.Pattern[S], reader symbol.Reader[S]) (count int, ok bool) {
	d, err := Prepare[S](p)
	if err != nil {
		return 0, false
	}
	return MatchesPrepared(d, reader)
}

// MatchesPrepared reports the length of the longest prefix of the
// reader accepted by an already-prepared DFA.
func MatchesPrepared[S symbol.Countable[S], O cmp.Ordered](d *dfa.DFA[S, O], reader symbol.Reader[S]) (count int, ok bool) {
	count, _, ok = d.Match(reader)
	return count, ok
}

// MatchesString matches a character pattern against the code points of
// a string.
func MatchesString(p pattern.Pattern[symbol.Char], s string) (count int, ok bool) {
	return Matches(p, symbol.Runes(s))
}

// MatchesBytes matches a byte pattern against a byte slice.
func MatchesBytes(p pattern.Pattern[symbol.Byte], b []byte) (count int, ok bool) {
	return Matches(p, symbol.Bytes(b))
}
