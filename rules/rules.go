// Package rules loads tokenizer rule definitions from YAML files and
// compiles them into patterns.
//
// A rule file declares named tokens with a priority and a pattern tree
// built from literal, range, any, seq and repeat nodes. There is no
// regular-expression concrete syntax; the node tree maps one-to-one
// onto the pattern combinators.
//
//	rules:
//	  - token: number
//	    pattern:
//	      repeat:
//	        of: { range: { from: "0", to: "9" } }
//	        min: 1
//	  - token: space
//	    pattern:
//	      repeat: { of: { literal: " " }, min: 1 }
//
// Lower priority values win when two rules accept the same input; when
// priorities are omitted, declaration order decides.
package rules

import (
	"os"
	"unicode/utf8"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"

	"github.com/coregx/rangelex/pattern"
	"github.com/coregx/rangelex/symbol"
	"github.com/coregx/rangelex/tokenizer"
)

// Node is one node of a rule's pattern tree. Exactly one field must be
// set.
type Node struct {
	Literal *string     `yaml:"literal,omitempty"`
	Range   *RangeNode  `yaml:"range,omitempty"`
	Any     []Node      `yaml:"any,omitempty"`
	Seq     []Node      `yaml:"seq,omitempty"`
	Repeat  *RepeatNode `yaml:"repeat,omitempty"`
}

// RangeNode matches a single character between From and To inclusive.
// Both fields must hold exactly one character.
type RangeNode struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// RepeatNode matches Min or more occurrences of Of, capped at Max when
// given.
type RepeatNode struct {
	Of  Node `yaml:"of"`
	Min int  `yaml:"min"`
	Max *int `yaml:"max,omitempty"`
}

// Rule names a token and the pattern producing it.
type Rule struct {
	Token    string `yaml:"token"`
	Priority *int   `yaml:"priority,omitempty"`
	Pattern  Node   `yaml:"pattern"`
}

// Ruleset is the top-level document of a rule file.
type Ruleset struct {
	Rules []Rule `yaml:"rules"`
}

// Load reads and parses a rule file.
func Load(path string) (*Ruleset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read rule file %s", path)
	}
	var rs Ruleset
	if err := yaml.Unmarshal(raw, &rs); err != nil {
		return nil, errors.Wrapf(err, "parse rule file %s", path)
	}
	return &rs, nil
}

// Compile turns the ruleset into a token matcher over characters,
// using each rule's priority as its output symbol. The returned map
// gives the token name for each output value.
func (rs *Ruleset) Compile() (*tokenizer.TokenMatcher[symbol.Char, int], map[int]string, error) {
	m := tokenizer.NewTokenMatcher[symbol.Char, int]()
	names := make(map[int]string, len(rs.Rules))

	for i, rule := range rs.Rules {
		if rule.Token == "" {
			return nil, nil, errors.Errorf("rule %d: missing token name", i)
		}
		priority := i
		if rule.Priority != nil {
			priority = *rule.Priority
		}
		if prev, taken := names[priority]; taken {
			return nil, nil, errors.Errorf("rule %q: priority %d already used by %q", rule.Token, priority, prev)
		}

		p, err := buildPattern(rule.Pattern)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "rule %q", rule.Token)
		}
		m.AddPattern(p, priority)
		names[priority] = rule.Token
	}
	return m, names, nil
}

func buildPattern(n Node) (pattern.Pattern[symbol.Char], error) {
	set := 0
	if n.Literal != nil {
		set++
	}
	if n.Range != nil {
		set++
	}
	if n.Any != nil {
		set++
	}
	if n.Seq != nil {
		set++
	}
	if n.Repeat != nil {
		set++
	}
	if set != 1 {
		return nil, errors.Errorf("pattern node must set exactly one of literal/range/any/seq/repeat, got %d", set)
	}

	switch {
	case n.Literal != nil:
		return pattern.ExactlyString(*n.Literal), nil

	case n.Range != nil:
		from, err := singleChar(n.Range.From)
		if err != nil {
			return nil, errors.Wrap(err, "range from")
		}
		to, err := singleChar(n.Range.To)
		if err != nil {
			return nil, errors.Wrap(err, "range to")
		}
		return pattern.NewRange(from, to)

	case n.Any != nil:
		subs, err := buildPatterns(n.Any)
		if err != nil {
			return nil, err
		}
		return pattern.AnyOf(subs...), nil

	case n.Seq != nil:
		subs, err := buildPatterns(n.Seq)
		if err != nil {
			return nil, err
		}
		return pattern.Seq(subs...), nil

	default:
		sub, err := buildPattern(n.Repeat.Of)
		if err != nil {
			return nil, err
		}
		if n.Repeat.Min < 0 {
			return nil, errors.Errorf("repeat min must be non-negative, got %d", n.Repeat.Min)
		}
		if n.Repeat.Max != nil {
			return pattern.RepeatBounded[symbol.Char](sub, n.Repeat.Min, *n.Repeat.Max), nil
		}
		return pattern.Repeat[symbol.Char](sub, n.Repeat.Min), nil
	}
}

func buildPatterns(nodes []Node) ([]pattern.Pattern[symbol.Char], error) {
	out := make([]pattern.Pattern[symbol.Char], 0, len(nodes))
	for i, n := range nodes {
		p, err := buildPattern(n)
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		out = append(out, p)
	}
	return out, nil
}

func singleChar(s string) (symbol.Char, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError && size == 1 {
		return 0, errors.Errorf("expected exactly one character, got %q", s)
	}
	return symbol.Char(r), nil
}
