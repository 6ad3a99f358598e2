package pattern

import (
	"cmp"

	"github.com/coregx/rangelex/nfa"
	"github.com/coregx/rangelex/symbol"
)

// Compile expands a pattern into the target NDFA starting at the given
// state and returns the accept state the pattern ends in. Fresh states
// are allocated as needed; branches are glued with ε-transitions.
//
// Compile is pure over the pattern value: compiling the same pattern
// twice, into the same or different automata, yields equivalent
// machines.
func Compile[S symbol.Countable[S], O cmp.Ordered](p Pattern[S], n *nfa.NDFA[S, O], from nfa.StateID) nfa.StateID {
	switch p := p.(type) {
	case Match[S]:
		to := n.AddState()
		n.AddTransition(from, p.Range, to)
		return to

	case Epsilon[S]:
		to := n.AddState()
		n.AddEpsilon(from, to)
		return to

	case Literal[S]:
		cur := from
		for _, s := range p.Symbols {
			to := n.AddState()
			n.AddTransition(cur, symbol.Single(s), to)
			cur = to
		}
		return cur

	case Sequence[S]:
		cur := from
		for _, sub := range p.Patterns {
			cur = Compile(sub, n, cur)
		}
		return cur

	case Choice[S]:
		end := n.AddState()
		if len(p.Patterns) == 0 {
			n.AddEpsilon(from, end)
			return end
		}
		for _, sub := range p.Patterns {
			start := n.AddState()
			n.AddEpsilon(from, start)
			branchEnd := Compile(sub, n, start)
			n.AddEpsilon(branchEnd, end)
		}
		return end

	case Repetition[S]:
		return compileRepetition(p, n, from)

	default:
		// Unknown node kinds cannot occur: the pattern set is closed.
		return from
	}
}

func compileRepetition[S symbol.Countable[S], O cmp.Ordered](p Repetition[S], n *nfa.NDFA[S, O], from nfa.StateID) nfa.StateID {
	cur := from
	for i := 0; i < p.Min; i++ {
		cur = Compile(p.Sub, n, cur)
	}

	if !p.Bounded {
		// One more copy of the body loops back to the accept state, so
		// any number of further occurrences lands on it again. An
		// ε-matching body cannot loop the compiler or the matcher:
		// closures are sets.
		loopEnd := Compile(p.Sub, n, cur)
		n.AddEpsilon(loopEnd, cur)
		return cur
	}

	// Bounded: each optional copy may be skipped by jumping straight to
	// the final accept state.
	skips := []nfa.StateID{}
	for i := p.Min; i < p.Max; i++ {
		skips = append(skips, cur)
		cur = Compile(p.Sub, n, cur)
	}
	for _, s := range skips {
		n.AddEpsilon(s, cur)
	}
	return cur
}
