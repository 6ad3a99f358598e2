// Package pattern implements the regular-pattern combinators that are
// compiled into nondeterministic automata.
//
// Patterns are plain values over a parametric alphabet: cheap to copy,
// free of any reference to an automaton, and reusable. The same pattern
// value may be compiled any number of times into different NDFAs.
//
// There is deliberately no concrete regular-expression syntax here;
// patterns are built with the combinators below (or loaded from a rule
// file by the rules package).
package pattern

import "github.com/coregx/rangelex/symbol"

// Pattern is a regular pattern over symbols of type S.
//
// The concrete kinds are Match, Epsilon, Literal, Sequence, Choice and
// Repetition. The set is closed; Compile type-switches over it.
type Pattern[S symbol.Countable[S]] interface {
	pattern()
}

// Match matches a single symbol falling in an inclusive range.
type Match[S symbol.Countable[S]] struct {
	Range symbol.Range[S]
}

// Epsilon matches the empty input.
type Epsilon[S symbol.Countable[S]] struct{}

// Literal matches an exact sequence of symbols.
type Literal[S symbol.Countable[S]] struct {
	Symbols []S
}

// Sequence matches its sub-patterns one after another.
type Sequence[S symbol.Countable[S]] struct {
	Patterns []Pattern[S]
}

// Choice matches any one of its sub-patterns.
type Choice[S symbol.Countable[S]] struct {
	Patterns []Pattern[S]
}

// Repetition matches at least Min occurrences of Sub; when Bounded is
// set, at most Max occurrences, otherwise unboundedly many.
type Repetition[S symbol.Countable[S]] struct {
	Sub     Pattern[S]
	Min     int
	Max     int
	Bounded bool
}

func (Match[S]) pattern()      {}
func (Epsilon[S]) pattern()    {}
func (Literal[S]) pattern()    {}
func (Sequence[S]) pattern()   {}
func (Choice[S]) pattern()     {}
func (Repetition[S]) pattern() {}

// Exactly matches the given symbol sequence.
func Exactly[S symbol.Countable[S]](symbols []S) Pattern[S] {
	return Literal[S]{Symbols: symbols}
}

// ExactlyString matches the given string, code point by code point.
func ExactlyString(s string) Pattern[symbol.Char] {
	return Literal[symbol.Char]{Symbols: symbol.Chars(s)}
}

// NewRange matches one symbol in the inclusive range [low, high].
// An inverted range fails eagerly with symbol.RangeError.
func NewRange[S symbol.Countable[S]](low, high S) (Pattern[S], error) {
	r, err := symbol.NewRange(low, high)
	if err != nil {
		return nil, err
	}
	return Match[S]{Range: r}, nil
}

// Single matches exactly the given symbol.
func Single[S symbol.Countable[S]](s S) Pattern[S] {
	return Match[S]{Range: symbol.Single(s)}
}

// AnyOf matches any one of the given patterns.
func AnyOf[S symbol.Countable[S]](patterns ...Pattern[S]) Pattern[S] {
	return Choice[S]{Patterns: patterns}
}

// Alt matches either p or q.
func Alt[S symbol.Countable[S]](p, q Pattern[S]) Pattern[S] {
	return Choice[S]{Patterns: []Pattern[S]{p, q}}
}

// Concat matches p followed by q.
func Concat[S symbol.Countable[S]](p, q Pattern[S]) Pattern[S] {
	return Sequence[S]{Patterns: []Pattern[S]{p, q}}
}

// Seq matches the given patterns one after another.
func Seq[S symbol.Countable[S]](patterns ...Pattern[S]) Pattern[S] {
	return Sequence[S]{Patterns: patterns}
}

// Repeat matches at least min occurrences of p, with no upper bound.
func Repeat[S symbol.Countable[S]](p Pattern[S], min int) Pattern[S] {
	return Repetition[S]{Sub: p, Min: min}
}

// RepeatBounded matches between min and max occurrences of p.
func RepeatBounded[S symbol.Countable[S]](p Pattern[S], min, max int) Pattern[S] {
	if max < min {
		max = min
	}
	return Repetition[S]{Sub: p, Min: min, Max: max, Bounded: true}
}

// RepeatForever matches min or more occurrences of p.
func RepeatForever[S symbol.Countable[S]](p Pattern[S], min int) Pattern[S] {
	return Repetition[S]{Sub: p, Min: min}
}
