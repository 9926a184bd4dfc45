package playfair

import (
	"strings"

	"playfair/internal/domain"
)

// alphabet is the reduced 25-letter alphabet, in natural order.
const alphabet = "ABCDEFGHIKLMNOPQRSTUVWXYZ"

// BuildGrid derives the key grid from a keyword: the keyword's unique
// letters in first-occurrence order, followed by the rest of the reduced
// alphabet in natural order, laid out row-major.
//
// Fails with ErrInvalidKeyword when nothing alphabetic survives cleaning.
func BuildGrid(keyword string) (domain.Grid, error) {
	cleaned := clean(keyword)
	if len(cleaned) == 0 {
		return domain.Grid{}, ErrInvalidKeyword
	}

	var letters [domain.Size * domain.Size]byte
	var seen [26]bool
	n := 0
	for _, l := range cleaned {
		if seen[l-'A'] {
			continue
		}
		seen[l-'A'] = true
		letters[n] = l
		n++
	}
	for i := 0; i < len(alphabet); i++ {
		l := alphabet[i]
		if seen[l-'A'] {
			continue
		}
		letters[n] = l
		n++
	}
	return domain.NewGrid(letters)
}

// clean uppercases s, drops everything but letters and maps J to I.
func clean(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range strings.ToUpper(s) {
		if r < 'A' || r > 'Z' {
			continue
		}
		if r == 'J' {
			r = 'I'
		}
		out = append(out, byte(r))
	}
	return out
}
