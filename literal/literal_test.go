package literal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/rangelex/pattern"
	"github.com/coregx/rangelex/symbol"
)

func byteLiteral(s string) pattern.Pattern[symbol.Byte] {
	return pattern.Exactly(symbol.ByteSymbols([]byte(s)))
}

func byteRange(t *testing.T, lo, hi byte) pattern.Pattern[symbol.Byte] {
	t.Helper()
	p, err := pattern.NewRange(symbol.Byte(lo), symbol.Byte(hi))
	require.NoError(t, err)
	return p
}

func literalStrings(s Seq) []string {
	out := make([]string, 0, s.Len())
	for _, l := range s.Literals() {
		out = append(out, string(l.Bytes))
	}
	return out
}

func TestPrefixes_Literal(t *testing.T) {
	seq := Prefixes(byteLiteral("foo"), DefaultConfig())
	require.True(t, seq.Known())
	assert.Equal(t, []string{"foo"}, literalStrings(seq))
	assert.True(t, seq.Literals()[0].Exact)
}

func TestPrefixes_SmallRangeExpands(t *testing.T) {
	seq := Prefixes(byteRange(t, 'a', 'c'), DefaultConfig())
	require.True(t, seq.Known())
	assert.Equal(t, []string{"a", "b", "c"}, literalStrings(seq))
}

func TestPrefixes_WideRangeUnknown(t *testing.T) {
	seq := Prefixes(byteRange(t, 0x00, 0xFF), DefaultConfig())
	assert.False(t, seq.Known())
}

func TestPrefixes_Choice(t *testing.T) {
	seq := Prefixes(pattern.Alt[symbol.Byte](byteLiteral("foo"), byteLiteral("bar")), DefaultConfig())
	require.True(t, seq.Known())
	assert.ElementsMatch(t, []string{"foo", "bar"}, literalStrings(seq))
}

func TestPrefixes_SequenceCrossProduct(t *testing.T) {
	p := pattern.Concat[symbol.Byte](byteLiteral("ab"), pattern.RepeatForever[symbol.Byte](byteRange(t, '0', '9'), 1))
	seq := Prefixes(p, DefaultConfig())
	require.True(t, seq.Known())

	got := literalStrings(seq)
	assert.Len(t, got, 10)
	assert.Contains(t, got, "ab0")
	assert.Contains(t, got, "ab9")
	for _, l := range seq.Literals() {
		assert.False(t, l.Exact, "repetition prefixes are never exact")
	}
}

func TestPrefixes_RepeatMinZeroIsEmptyPrefix(t *testing.T) {
	seq := Prefixes(pattern.RepeatForever[symbol.Byte](byteLiteral("ab"), 0), DefaultConfig())
	require.True(t, seq.Known())
	assert.True(t, seq.HasEmpty())
}

// TestPrefixes_InexactStopsExtension tests that prefixes cut by an
// unbounded repetition are not extended by later sequence parts.
func TestPrefixes_InexactStopsExtension(t *testing.T) {
	p := pattern.Seq[symbol.Byte](
		pattern.RepeatForever[symbol.Byte](byteLiteral("a"), 1),
		byteLiteral("end"),
	)
	seq := Prefixes(p, DefaultConfig())
	require.True(t, seq.Known())
	assert.Equal(t, []string{"a"}, literalStrings(seq))
	assert.False(t, seq.Literals()[0].Exact)
}

func TestPrefixSeq_UnknownMemberPoisonsSet(t *testing.T) {
	patterns := []pattern.Pattern[symbol.Byte]{
		byteLiteral("foo"),
		pattern.RepeatForever[symbol.Byte](byteRange(t, 0x00, 0xFF), 1),
	}
	seq := PrefixSeq(patterns, DefaultConfig())
	assert.False(t, seq.Known())
}

func TestPrefixSeq_Union(t *testing.T) {
	patterns := []pattern.Pattern[symbol.Byte]{
		byteLiteral("foo"),
		byteLiteral("bar"),
	}
	seq := PrefixSeq(patterns, DefaultConfig())
	require.True(t, seq.Known())
	assert.ElementsMatch(t, []string{"foo", "bar"}, literalStrings(seq))
}
