package tokenizer

import (
	"cmp"
	"sort"

	"github.com/coregx/rangelex/dfa"
	"github.com/coregx/rangelex/symbol"
)

// AnnotatedStream binds an input sequence to the ordered list of tokens
// produced from it, with random-access queries by source offset.
//
// The stream owns a copy of its input; slices returned by the InputFor
// queries borrow that storage. Token spans are sorted, non-empty and
// non-overlapping; gaps between them are input the tokenizer skipped.
// Once built, a stream is read-only.
type AnnotatedStream[I any, O any] struct {
	original  []I
	tokenized []Token[O]
}

// FromReader tokenizes everything the reader yields and annotates it.
//
// The reader is drained into the stream's owned buffer first; the
// matcher then runs repeatedly from the current position. On a match
// the token is recorded and the position advances past it. Where no
// pattern matches (or only the empty prefix matches, which would make
// no progress), one symbol is skipped, leaving a gap.
func FromReader[S symbol.Countable[S], O cmp.Ordered](d *dfa.DFA[S, O], reader symbol.Reader[S]) *AnnotatedStream[S, O] {
	original := symbol.Collect(reader)
	stream := &AnnotatedStream[S, O]{original: original}

	cursor := NewCursor(d, original)
	for !cursor.AtEnd() {
		start := cursor.Pos()
		output, ok := cursor.NextToken()
		if !ok {
			cursor.Skip()
			continue
		}
		stream.tokenized = append(stream.tokenized, Token[O]{
			Location: Span{Start: start, End: cursor.Pos()},
			Output:   output,
		})
	}
	return stream
}

// InputLen returns the number of symbols in the original input.
func (a *AnnotatedStream[I, O]) InputLen() int {
	return len(a.original)
}

// OutputLen returns the number of tokens produced.
func (a *AnnotatedStream[I, O]) OutputLen() int {
	return len(a.tokenized)
}

// Input returns the original input. The slice aliases the stream's
// storage and must not be mutated.
func (a *AnnotatedStream[I, O]) Input() []I {
	return a.original
}

// Outputs returns the output symbols of the tokens, in source order.
func (a *AnnotatedStream[I, O]) Outputs() []O {
	out := make([]O, len(a.tokenized))
	for i, t := range a.tokenized {
		out[i] = t.Output
	}
	return out
}

// Tokens returns the tokens in source order. The slice aliases the
// stream's storage and must not be mutated.
func (a *AnnotatedStream[I, O]) Tokens() []Token[O] {
	return a.tokenized
}

// InputForRange returns the slice of the original input covered by the
// half-open span.
func (a *AnnotatedStream[I, O]) InputForRange(s Span) []I {
	return a.original[s.Start:s.End]
}

// InputForToken returns the slice of the original input the token was
// produced from.
func (a *AnnotatedStream[I, O]) InputForToken(t Token[O]) []I {
	return a.InputForRange(t.Location)
}

// findTokenIndex locates the token covering position. When no token
// covers it, ok is false and idx is the index of the first token
// starting after the position.
func (a *AnnotatedStream[I, O]) findTokenIndex(position int) (idx int, ok bool) {
	// Tokens are sorted by start; search on the start offset, then
	// fall back to the predecessor, which is the only other candidate.
	i := sort.Search(len(a.tokenized), func(i int) bool {
		return a.tokenized[i].Location.Start >= position
	})
	if i < len(a.tokenized) && a.tokenized[i].Location.Start == position {
		return i, true
	}
	if i > 0 && a.tokenized[i-1].Location.End > position {
		return i - 1, true
	}
	return i, false
}

// FindToken returns the token whose span contains the position, if any.
func (a *AnnotatedStream[I, O]) FindToken(position int) (Token[O], bool) {
	idx, ok := a.findTokenIndex(position)
	if !ok {
		return Token[O]{}, false
	}
	return a.tokenized[idx], true
}

// TokensInRange returns the contiguous run of tokens overlapping the
// half-open span on its left boundary: from the token covering
// s.Start (or the first token after it) up to, but not including, the
// first token starting at or beyond s.End. The slice aliases the
// stream's storage.
func (a *AnnotatedStream[I, O]) TokensInRange(s Span) []Token[O] {
	start, _ := a.findTokenIndex(s.Start)
	end := start
	for end < len(a.tokenized) && a.tokenized[end].Location.Start < s.End {
		end++
	}
	return a.tokenized[start:end]
}
