package pattern

import (
	"testing"

	"github.com/coregx/rangelex/dfa"
	"github.com/coregx/rangelex/nfa"
	"github.com/coregx/rangelex/symbol"
)

// prepare compiles a pattern into a DFA with output 0 on its accept
// state.
func prepare(t *testing.T, p Pattern[symbol.Char]) *dfa.DFA[symbol.Char, int] {
	t.Helper()
	n := nfa.New[symbol.Char, int]()
	accept := Compile(p, n, 0)
	n.SetOutput(accept, 0)
	n.FixOverlappingRanges()
	d, err := dfa.Compile(n)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func match(t *testing.T, p Pattern[symbol.Char], input string) (int, bool) {
	t.Helper()
	count, _, ok := prepare(t, p).Match(symbol.NewSliceReader(symbol.Chars(input)))
	return count, ok
}

func mustRange(t *testing.T, lo, hi symbol.Char) Pattern[symbol.Char] {
	t.Helper()
	p, err := NewRange(lo, hi)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

// TestCompile_Literal tests literal chains.
func TestCompile_Literal(t *testing.T) {
	p := ExactlyString("abc")

	tests := []struct {
		input string
		count int
		ok    bool
	}{
		{"abc", 3, true},
		{"abcdef", 3, true},
		{"ab", 0, false},
		{"xbc", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			count, ok := match(t, p, tt.input)
			if count != tt.count || ok != tt.ok {
				t.Errorf("match(%q) = %d, %v, want %d, %v", tt.input, count, ok, tt.count, tt.ok)
			}
		})
	}
}

// TestCompile_Epsilon tests the empty pattern.
func TestCompile_Epsilon(t *testing.T) {
	count, ok := match(t, Epsilon[symbol.Char]{}, "anything")
	if !ok || count != 0 {
		t.Errorf("match = %d, %v, want 0, true", count, ok)
	}
}

// TestCompile_Range tests single-symbol range matching.
func TestCompile_Range(t *testing.T) {
	p := mustRange(t, '0', '9')
	if count, ok := match(t, p, "5x"); !ok || count != 1 {
		t.Errorf("match(5x) = %d, %v, want 1, true", count, ok)
	}
	if _, ok := match(t, p, "x5"); ok {
		t.Error("match(x5) should reject")
	}
}

// TestCompile_Choice tests alternation.
func TestCompile_Choice(t *testing.T) {
	p := Alt[symbol.Char](ExactlyString("cat"), ExactlyString("car"))

	for _, input := range []string{"cat", "car"} {
		if count, ok := match(t, p, input); !ok || count != 3 {
			t.Errorf("match(%q) = %d, %v, want 3, true", input, count, ok)
		}
	}
	if _, ok := match(t, p, "cab"); ok {
		t.Error("match(cab) should reject")
	}
}

// TestCompile_Sequence tests concatenation.
func TestCompile_Sequence(t *testing.T) {
	p := Concat[symbol.Char](ExactlyString("ab"), mustRange(t, '0', '9'))
	if count, ok := match(t, p, "ab7z"); !ok || count != 3 {
		t.Errorf("match(ab7z) = %d, %v, want 3, true", count, ok)
	}
	if _, ok := match(t, p, "abz"); ok {
		t.Error("match(abz) should reject")
	}
}

// TestCompile_RepeatForever tests unbounded repetition.
func TestCompile_RepeatForever(t *testing.T) {
	p := RepeatForever[symbol.Char](ExactlyString("ab"), 1)

	tests := []struct {
		input string
		count int
		ok    bool
	}{
		{"ab", 2, true},
		{"abab", 4, true},
		{"ababab", 6, true},
		{"abax", 2, true}, // longest complete repetition
		{"a", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			count, ok := match(t, p, tt.input)
			if count != tt.count || ok != tt.ok {
				t.Errorf("match(%q) = %d, %v, want %d, %v", tt.input, count, ok, tt.count, tt.ok)
			}
		})
	}
}

// TestCompile_RepeatMinZero tests that a zero-minimum repetition
// accepts the empty prefix.
func TestCompile_RepeatMinZero(t *testing.T) {
	p := RepeatForever[symbol.Char](ExactlyString("ab"), 0)
	if count, ok := match(t, p, "xyz"); !ok || count != 0 {
		t.Errorf("match(xyz) = %d, %v, want 0, true", count, ok)
	}
	if count, ok := match(t, p, "abab"); !ok || count != 4 {
		t.Errorf("match(abab) = %d, %v, want 4, true", count, ok)
	}
}

// TestCompile_RepeatBounded tests min/max bounded repetition.
func TestCompile_RepeatBounded(t *testing.T) {
	p := RepeatBounded[symbol.Char](ExactlyString("a"), 2, 4)

	tests := []struct {
		input string
		count int
		ok    bool
	}{
		{"a", 0, false},
		{"aa", 2, true},
		{"aaa", 3, true},
		{"aaaa", 4, true},
		{"aaaaaa", 4, true}, // capped at max
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			count, ok := match(t, p, tt.input)
			if count != tt.count || ok != tt.ok {
				t.Errorf("match(%q) = %d, %v, want %d, %v", tt.input, count, ok, tt.count, tt.ok)
			}
		})
	}
}

// TestCompile_EpsilonBody tests that repeating an ε-matching body does
// not loop the compiler or the matcher.
func TestCompile_EpsilonBody(t *testing.T) {
	p := RepeatForever[symbol.Char](Epsilon[symbol.Char]{}, 0)
	count, ok := match(t, p, "abc")
	if !ok || count != 0 {
		t.Errorf("match = %d, %v, want 0, true", count, ok)
	}
}

// TestCompile_Pure tests that compiling the same pattern twice into
// different automata yields machines with identical behavior.
func TestCompile_Pure(t *testing.T) {
	p := Seq[symbol.Char](mustRange(t, 'a', 'f'), RepeatForever[symbol.Char](mustRange(t, '0', '9'), 1))

	for _, input := range []string{"a12", "f0", "g1", "a", ""} {
		c1, ok1 := match(t, p, input)
		c2, ok2 := match(t, p, input)
		if c1 != c2 || ok1 != ok2 {
			t.Errorf("match(%q) differs between compilations: (%d,%v) vs (%d,%v)", input, c1, ok1, c2, ok2)
		}
	}
}
