package dfa

import (
	"testing"

	"github.com/coregx/rangelex/nfa"
	"github.com/coregx/rangelex/symbol"
)

func mkRange(t *testing.T, lo, hi symbol.Char) symbol.Range[symbol.Char] {
	t.Helper()
	r, err := symbol.NewRange(lo, hi)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

// TestCompile_Simple tests determinization of a small ε-NDFA.
func TestCompile_Simple(t *testing.T) {
	// 0 -ε-> 1, 1 -[a]-> 2(out 5), 0 -[a-b]-> 3, 3 -[b]-> 4(out 9)
	n := nfa.New[symbol.Char, int]()
	for i := 0; i < 4; i++ {
		n.AddState()
	}
	n.AddEpsilon(0, 1)
	n.AddTransition(1, mkRange(t, 'a', 'a'), 2)
	n.AddTransition(0, mkRange(t, 'a', 'b'), 3)
	n.AddTransition(3, mkRange(t, 'b', 'b'), 4)
	n.SetOutput(2, 5)
	n.SetOutput(4, 9)
	n.FixOverlappingRanges()

	d, err := Compile(n)
	if err != nil {
		t.Fatal(err)
	}

	count, out, ok := d.Match(symbol.NewSliceReader(symbol.Chars("a")))
	if !ok || count != 1 || out != 5 {
		t.Errorf("Match(a) = %d, %d, %v, want 1, 5, true", count, out, ok)
	}
	count, out, ok = d.Match(symbol.NewSliceReader(symbol.Chars("ab")))
	if !ok || count != 2 || out != 9 {
		t.Errorf("Match(ab) = %d, %d, %v, want 2, 9, true", count, out, ok)
	}
	if _, _, ok := d.Match(symbol.NewSliceReader(symbol.Chars("b"))); ok {
		t.Error("Match(b) should reject")
	}
}

// TestCompile_Disjoint tests that every compiled state has pairwise
// disjoint, sorted transitions.
func TestCompile_Disjoint(t *testing.T) {
	n := nfa.New[symbol.Char, int]()
	a := n.AddState()
	b := n.AddState()
	n.AddTransition(0, mkRange(t, 'a', 'z'), a)
	n.AddTransition(0, mkRange(t, 'f', 'p'), b)
	n.AddTransition(a, mkRange(t, '0', '9'), a)
	n.SetOutput(a, 1)
	n.SetOutput(b, 2)
	n.FixOverlappingRanges()

	d, err := Compile(n)
	if err != nil {
		t.Fatal(err)
	}

	for id := StateID(0); id < d.CountStates(); id++ {
		ts := d.TransitionsFor(id)
		for i := 1; i < len(ts); i++ {
			if ts[i-1].Range.Compare(ts[i].Range) >= 0 {
				t.Errorf("state %d transitions not sorted: %v", id, ts)
			}
			if ts[i-1].Range.Overlaps(ts[i].Range) {
				t.Errorf("state %d has overlapping ranges: %v", id, ts)
			}
		}
	}
}

// TestCompile_OutputPriority tests that fused accepting states keep the
// minimum output.
func TestCompile_OutputPriority(t *testing.T) {
	n := nfa.New[symbol.Char, int]()
	hi := n.AddState()
	lo := n.AddState()
	n.AddTransition(0, mkRange(t, 'x', 'x'), hi)
	n.AddTransition(0, mkRange(t, 'x', 'x'), lo)
	n.SetOutput(hi, 9)
	n.SetOutput(lo, 3)
	n.FixOverlappingRanges()

	d, err := Compile(n)
	if err != nil {
		t.Fatal(err)
	}

	_, out, ok := d.Match(symbol.NewSliceReader(symbol.Chars("x")))
	if !ok || out != 3 {
		t.Errorf("Match(x) output = %d, %v, want 3, true", out, ok)
	}
}

// TestCompile_OverlapError tests that an unfixed NDFA is refused.
func TestCompile_OverlapError(t *testing.T) {
	n := nfa.New[symbol.Char, int]()
	a := n.AddState()
	b := n.AddState()
	n.AddTransition(0, mkRange(t, 'a', 'm'), a)
	n.AddTransition(0, mkRange(t, 'g', 'z'), b)

	_, err := Compile(n)
	if err == nil {
		t.Fatal("expected error for overlapping labels")
	}
	if _, ok := err.(*CompileError); !ok {
		t.Errorf("error type = %T, want *CompileError", err)
	}
}

// TestCompile_RejectAll tests the automaton with no accepting states.
func TestCompile_RejectAll(t *testing.T) {
	n := nfa.New[symbol.Char, int]()
	d, err := Compile(n)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, ok := d.Match(symbol.NewSliceReader(symbol.Chars("anything"))); ok {
		t.Error("empty automaton should reject everything")
	}
	if _, _, ok := d.Match(symbol.NewSliceReader[symbol.Char](nil)); ok {
		t.Error("empty automaton should reject empty input")
	}
}
