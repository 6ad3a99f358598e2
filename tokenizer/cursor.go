package tokenizer

import (
	"cmp"

	"github.com/coregx/rangelex/dfa"
	"github.com/coregx/rangelex/symbol"
)

// Cursor tokenizes a symbol buffer one token at a time, tracking the
// current read position. It is the stepping interface underneath
// FromReader; drivers that want custom recovery can use it directly.
type Cursor[S symbol.Countable[S], O cmp.Ordered] struct {
	dfa *dfa.DFA[S, O]
	buf []S
	pos int
}

// NewCursor returns a cursor over the buffer, positioned at its start.
// The buffer is not copied.
func NewCursor[S symbol.Countable[S], O cmp.Ordered](d *dfa.DFA[S, O], buf []S) *Cursor[S, O] {
	return &Cursor[S, O]{dfa: d, buf: buf}
}

// Pos returns the current read position.
func (c *Cursor[S, O]) Pos() int {
	return c.pos
}

// AtEnd reports whether the cursor has consumed the whole buffer.
func (c *Cursor[S, O]) AtEnd() bool {
	return c.pos >= len(c.buf)
}

// NextToken matches from the current position. On a non-empty match it
// advances past the matched symbols and returns the output; otherwise
// it stays put and returns ok == false. A zero-length accept counts as
// no match: it would make no progress, and token spans are never
// empty.
func (c *Cursor[S, O]) NextToken() (output O, ok bool) {
	count, output, matched := c.dfa.Match(symbol.NewSliceReader(c.buf[c.pos:]))
	if !matched || count == 0 {
		var zero O
		return zero, false
	}
	c.pos += count
	return output, true
}

// Skip advances past one symbol without producing a token.
func (c *Cursor[S, O]) Skip() {
	if c.pos < len(c.buf) {
		c.pos++
	}
}

// SkipTo moves the read position forward to pos; moving backwards is
// a no-op.
func (c *Cursor[S, O]) SkipTo(pos int) {
	if pos > c.pos {
		c.pos = pos
		if c.pos > len(c.buf) {
			c.pos = len(c.buf)
		}
	}
}
