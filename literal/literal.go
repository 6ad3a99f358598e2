// Package literal extracts literal byte sequences from patterns over
// the byte alphabet.
//
// The use case is prefilter construction: when every string a pattern
// set accepts begins with one of a small set of known byte literals,
// a multi-pattern scan over those literals can find the next possible
// token start far faster than stepping the automaton one symbol at a
// time.
package literal

import (
	"github.com/coregx/rangelex/pattern"
	"github.com/coregx/rangelex/symbol"
)

// Literal is a byte sequence that may begin a match. Exact marks a
// literal that is an entire accepted string rather than a proper
// prefix of one.
type Literal struct {
	Bytes []byte
	Exact bool
}

// Seq is a set of alternative prefix literals extracted from a pattern.
//
// A Seq is either known — its literals are a sound over-approximation
// of every prefix the pattern can start with — or unknown, when the
// pattern's prefixes could not be characterised (ranges or literal sets
// over the configured limits). A leading optional part yields a known
// Seq holding the empty literal (see HasEmpty). An unknown Seq must not
// be used for prefiltering.
type Seq struct {
	literals []Literal
	known    bool
}

// Unknown returns the Seq marking unextractable prefixes.
func Unknown() Seq {
	return Seq{}
}

// NewSeq returns a known Seq over the given literals.
func NewSeq(literals ...Literal) Seq {
	return Seq{literals: literals, known: true}
}

// Known reports whether the literals soundly cover the pattern's
// prefixes.
func (s Seq) Known() bool {
	return s.known
}

// Len returns the number of literals.
func (s Seq) Len() int {
	return len(s.literals)
}

// Literals returns the extracted literals.
func (s Seq) Literals() []Literal {
	return s.literals
}

// HasEmpty reports whether any literal is empty. An empty prefix means
// every position is a candidate, which defeats prefiltering.
func (s Seq) HasEmpty() bool {
	for _, l := range s.literals {
		if len(l.Bytes) == 0 {
			return true
		}
	}
	return false
}

// Config bounds extraction so pathological patterns cannot blow up the
// literal set.
type Config struct {
	// MaxLiterals caps how many alternative literals are kept before
	// extraction gives up.
	MaxLiterals int

	// MaxLiteralLen caps the length of each literal; longer prefixes
	// are cut and marked inexact.
	MaxLiteralLen int

	// MaxRangeSize caps how many symbols a range is expanded into.
	MaxRangeSize int
}

// DefaultConfig returns extraction limits suitable for typical token
// pattern sets.
func DefaultConfig() Config {
	return Config{
		MaxLiterals:   64,
		MaxLiteralLen: 32,
		MaxRangeSize:  10,
	}
}

// Prefixes extracts the prefix literals of a byte pattern under the
// given limits.
func Prefixes(p pattern.Pattern[symbol.Byte], cfg Config) Seq {
	return extract(p, cfg)
}

// PrefixSeq extracts and unions the prefix literals of a pattern set.
// The result is unknown as soon as any member's prefixes are.
func PrefixSeq(patterns []pattern.Pattern[symbol.Byte], cfg Config) Seq {
	out := Seq{known: true}
	for _, p := range patterns {
		s := extract(p, cfg)
		if !s.known {
			return Unknown()
		}
		out.literals = append(out.literals, s.literals...)
		if len(out.literals) > cfg.MaxLiterals {
			return Unknown()
		}
	}
	return out
}

func extract(p pattern.Pattern[symbol.Byte], cfg Config) Seq {
	switch p := p.(type) {
	case pattern.Literal[symbol.Byte]:
		b := make([]byte, 0, len(p.Symbols))
		for _, s := range p.Symbols {
			b = append(b, byte(s))
		}
		return truncate(NewSeq(Literal{Bytes: b, Exact: true}), cfg)

	case pattern.Epsilon[symbol.Byte]:
		return NewSeq(Literal{Exact: true})

	case pattern.Match[symbol.Byte]:
		size := int(p.Range.High) - int(p.Range.Low) + 1
		if size > cfg.MaxRangeSize {
			return Unknown()
		}
		lits := make([]Literal, 0, size)
		for b := int(p.Range.Low); b <= int(p.Range.High); b++ {
			lits = append(lits, Literal{Bytes: []byte{byte(b)}, Exact: true})
		}
		return NewSeq(lits...)

	case pattern.Sequence[symbol.Byte]:
		acc := NewSeq(Literal{Exact: true})
		for _, sub := range p.Patterns {
			if !allExact(acc) {
				// Prefixes already cut; later parts cannot extend them.
				return acc
			}
			next := extract(sub, cfg)
			if !next.known {
				return inexact(acc)
			}
			acc = cross(acc, next, cfg)
			if !acc.known {
				return Unknown()
			}
		}
		return acc

	case pattern.Choice[symbol.Byte]:
		out := Seq{known: true}
		for _, sub := range p.Patterns {
			s := extract(sub, cfg)
			if !s.known {
				return Unknown()
			}
			out.literals = append(out.literals, s.literals...)
			if len(out.literals) > cfg.MaxLiterals {
				return Unknown()
			}
		}
		return out

	case pattern.Repetition[symbol.Byte]:
		if p.Min == 0 {
			// The empty string is accepted, so only the trivial empty
			// prefix covers every match. Marked inexact so sequence
			// crossing stops here instead of fabricating prefixes.
			return NewSeq(Literal{Exact: false})
		}
		sub := extract(p.Sub, cfg)
		if !sub.known {
			return Unknown()
		}
		// One mandatory occurrence begins every match; further
		// occurrences only extend it.
		return inexact(sub)

	default:
		return Unknown()
	}
}

// cross concatenates every literal of a with every literal of b.
func cross(a, b Seq, cfg Config) Seq {
	if len(a.literals)*len(b.literals) > cfg.MaxLiterals {
		return Unknown()
	}
	out := Seq{known: true}
	for _, la := range a.literals {
		for _, lb := range b.literals {
			joined := make([]byte, 0, len(la.Bytes)+len(lb.Bytes))
			joined = append(joined, la.Bytes...)
			joined = append(joined, lb.Bytes...)
			out.literals = append(out.literals, Literal{Bytes: joined, Exact: la.Exact && lb.Exact})
		}
	}
	return truncate(out, cfg)
}

func truncate(s Seq, cfg Config) Seq {
	for i, l := range s.literals {
		if len(l.Bytes) > cfg.MaxLiteralLen {
			s.literals[i].Bytes = l.Bytes[:cfg.MaxLiteralLen]
			s.literals[i].Exact = false
		}
	}
	return s
}

func allExact(s Seq) bool {
	for _, l := range s.literals {
		if !l.Exact {
			return false
		}
	}
	return true
}

func inexact(s Seq) Seq {
	for i := range s.literals {
		s.literals[i].Exact = false
	}
	return s
}
