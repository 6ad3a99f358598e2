// Package prefilter locates candidate token starts in a byte haystack
// using multi-pattern literal search.
//
// A prefilter is built from the prefix-literal set of a tokenizer's
// patterns. Inside an unmatched gap, the annotated-stream driver asks
// the prefilter for the next position where any pattern could possibly
// begin, instead of re-running the automaton at every offset. The
// prefilter never affects which tokens are produced, only how fast
// skipped regions are crossed.
package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/rangelex/literal"
)

// Prefilter scans for the next candidate match position.
type Prefilter struct {
	automaton *ahocorasick.Automaton
}

// FromSeq builds a prefilter over a prefix-literal set. It returns nil
// when the set cannot prefilter: unknown prefixes, an empty literal
// (every position would be a candidate), or no literals at all.
func FromSeq(seq literal.Seq) *Prefilter {
	if !seq.Known() || seq.Len() == 0 || seq.HasEmpty() {
		return nil
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range seq.Literals() {
		builder.AddPattern(lit.Bytes)
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil
	}
	return &Prefilter{automaton: automaton}
}

// NextCandidate returns the next position at or after 'at' where some
// pattern prefix begins, or -1 when the rest of the haystack contains
// none.
func (p *Prefilter) NextCandidate(haystack []byte, at int) int {
	if at >= len(haystack) {
		return -1
	}
	m := p.automaton.Find(haystack, at)
	if m == nil {
		return -1
	}
	return m.Start
}
