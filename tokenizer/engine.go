package tokenizer

import (
	"cmp"

	"github.com/coregx/rangelex/dfa"
	"github.com/coregx/rangelex/literal"
	"github.com/coregx/rangelex/prefilter"
	"github.com/coregx/rangelex/symbol"
)

// ByteEngine is a prepared tokenizer over the byte alphabet. Besides
// the deterministic automaton it may carry a literal prefilter, used to
// cross unmatched gaps without probing the automaton at every offset.
type ByteEngine[O cmp.Ordered] struct {
	dfa       *dfa.DFA[symbol.Byte, O]
	prefilter *prefilter.Prefilter
}

// PrepareBytes compiles a byte token matcher into an engine. When the
// pattern set has a usable prefix-literal set, an Aho-Corasick
// prefilter is attached; otherwise the engine degrades to plain
// one-symbol skipping with identical output.
func PrepareBytes[O cmp.Ordered](m *TokenMatcher[symbol.Byte, O]) (*ByteEngine[O], error) {
	d, err := m.Prepare()
	if err != nil {
		return nil, err
	}
	seq := literal.PrefixSeq(m.Patterns(), literal.DefaultConfig())
	return &ByteEngine[O]{
		dfa:       d,
		prefilter: prefilter.FromSeq(seq),
	}, nil
}

// DFA returns the engine's deterministic automaton.
func (e *ByteEngine[O]) DFA() *dfa.DFA[symbol.Byte, O] {
	return e.dfa
}

// HasPrefilter reports whether gap recovery is accelerated.
func (e *ByteEngine[O]) HasPrefilter() bool {
	return e.prefilter != nil
}

// Annotate tokenizes the input and returns the annotated stream. The
// result is identical to FromReader over the same bytes; the prefilter
// only changes how quickly unmatched regions are crossed.
func (e *ByteEngine[O]) Annotate(input []byte) *AnnotatedStream[symbol.Byte, O] {
	original := symbol.ByteSymbols(input)
	stream := &AnnotatedStream[symbol.Byte, O]{original: original}

	cursor := NewCursor(e.dfa, original)
	for !cursor.AtEnd() {
		start := cursor.Pos()
		output, ok := cursor.NextToken()
		if ok {
			stream.tokenized = append(stream.tokenized, Token[O]{
				Location: Span{Start: start, End: cursor.Pos()},
				Output:   output,
			})
			continue
		}

		if e.prefilter == nil {
			cursor.Skip()
			continue
		}
		next := e.prefilter.NextCandidate(input, start+1)
		if next < 0 {
			break
		}
		cursor.SkipTo(next)
	}
	return stream
}
