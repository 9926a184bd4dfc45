package playfair_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playfair/internal/domain"
	"playfair/internal/playfair"
)

// digs parses "HE LX LO" into the digraph slice Normalize returns.
func digs(t *testing.T, s string) []domain.Digraph {
	t.Helper()
	if s == "" {
		return []domain.Digraph{}
	}
	var out []domain.Digraph
	for _, pair := range strings.Fields(s) {
		require.Len(t, pair, 2)
		out = append(out, domain.Digraph{pair[0], pair[1]})
	}
	return out
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    string
	}{
		{"PlainEven", "HIDE", "HI DE"},
		{"OddPadded", "HAT", "HA TX"},
		{"RepeatSplit", "HELLO", "HE LX LO"},
		{"RepeatStraddlesBoundary", "ATTACK", "AT TA CK"},
		{"DoubleRepeat", "BALLOON", "BA LX LO ON"},
		{"TripleRun", "AAA", "AX AX AX"},
		{"RepeatedX", "XX", "XZ XZ"},
		{"XNotSplitAcrossPair", "AXXA", "AX XA"},
		{"FillerMatchesPlain", "AXENAX", "AX EN AX"},
		{"MixedCasePunctuation", "HeLlO JOhN! 123", "HE LX LO IO HN"},
		{"SingleLetter", "A", "AX"},
		{"SingleX", "X", "XZ"},
		{"JBecomesI", "JUJITSU", "IU IX IT SU"},
		{"Empty", "", ""},
		{"NoLetters", "42 !?", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := playfair.Normalize(tc.message)
			assert.Equal(t, digs(t, tc.want), got)
		})
	}
}

// Normalize output is always a whole number of digraphs and never pairs a
// letter with itself.
func TestNormalize_Properties(t *testing.T) {
	messages := []string{
		"HELLO", "ATTACK", "AAAAAAA", "XXXXXX", "MISSISSIPPI",
		"bookkeeper", "The quick brown fox jumps over the lazy dog",
		"zzz", "jj", "a",
	}
	for _, message := range messages {
		out := playfair.Normalize(message)
		for i, d := range out {
			assert.NotEqual(t, d[0], d[1], "message %q digraph %d (%s)", message, i, d)
			for _, l := range d {
				assert.True(t, l >= 'A' && l <= 'Z' && l != 'J',
					"message %q digraph %d (%s)", message, i, d)
			}
		}
	}
}
