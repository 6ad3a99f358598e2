package tokenizer

// Annotator builds an AnnotatedStream by manually tagging an input
// sequence: push input symbols, then close each pending span with a
// token or discard it with a skip.
//
// Streams built by hand obey the same invariants, and answer the same
// queries the same way, as streams produced by a tokenizer.
type Annotator[I any, O any] struct {
	stream   AnnotatedStream[I, O]
	startPos int
}

// NewAnnotator creates an empty annotator.
func NewAnnotator[I any, O any]() *Annotator[I, O] {
	return &Annotator[I, O]{}
}

// PushInput appends one input symbol to the pending span.
func (an *Annotator[I, O]) PushInput(sym I) {
	an.stream.original = append(an.stream.original, sym)
}

// AppendInput appends a sequence of input symbols to the pending span.
func (an *Annotator[I, O]) AppendInput(symbols []I) {
	an.stream.original = append(an.stream.original, symbols...)
}

// Token closes the pending span with the given output symbol. An empty
// pending span records nothing: token spans are never empty.
func (an *Annotator[I, O]) Token(output O) {
	pos := len(an.stream.original)
	if pos > an.startPos {
		an.stream.tokenized = append(an.stream.tokenized, Token[O]{
			Location: Span{Start: an.startPos, End: pos},
			Output:   output,
		})
	}
	an.startPos = pos
}

// Skip discards the pending span, leaving its symbols untokenized.
func (an *Annotator[I, O]) Skip() {
	an.startPos = len(an.stream.original)
}

// Finish returns the built stream. The annotator must not be used
// afterwards.
func (an *Annotator[I, O]) Finish() *AnnotatedStream[I, O] {
	s := an.stream
	an.stream = AnnotatedStream[I, O]{}
	return &s
}
