// Package tokenizer turns a stream of input symbols into a stream of
// tagged tokens carrying the source ranges they span.
//
// A TokenMatcher pairs regular patterns with output symbols and
// compiles them into a single deterministic automaton. Driving that
// automaton over an input produces an AnnotatedStream: the owned copy
// of the input together with the ordered, non-overlapping token spans
// recognised in it. When two patterns accept the same longest prefix,
// the lowest-ordered output symbol wins.
package tokenizer

import "fmt"

// Span is a half-open range [Start, End) of offsets into an input.
type Span struct {
	Start int
	End   int
}

// Len returns the number of symbols the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether pos falls inside the span.
func (s Span) Contains(pos int) bool {
	return pos >= s.Start && pos < s.End
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Token is an individual item in an annotated stream: the output
// symbol produced for a span of the original input.
type Token[O any] struct {
	// Location is where the token's input appears in the original
	// stream.
	Location Span

	// Output is the symbol the tokenizer produced for that input.
	Output O
}
