package playfair

import "playfair/internal/domain"

// Normalize converts arbitrary text into the digraph sequence the cipher
// operates on. It never fails; input with no letters yields an empty slice.
//
// The cleaned text is scanned one letter at a time. A letter equal to its
// successor is paired with a filler instead, and the cursor advances by one
// so the successor is re-examined against the filler on the next iteration.
// A run of identical letters therefore breaks up letter by letter; chunking
// the text pairwise diverges from this on runs of three or more.
func Normalize(message string) []domain.Digraph {
	letters := clean(message)

	buf := make([]byte, 0, len(letters)+len(letters)/2+1)
	for i := 0; i < len(letters); {
		cur := letters[i]
		if i+1 == len(letters) {
			buf = append(buf, cur)
			break
		}
		if next := letters[i+1]; cur != next {
			buf = append(buf, cur, next)
			i += 2
			continue
		}
		buf = append(buf, cur, filler(cur))
		i++
	}
	if len(buf)%2 != 0 {
		buf = append(buf, filler(buf[len(buf)-1]))
	}

	digraphs := make([]domain.Digraph, 0, len(buf)/2)
	for i := 0; i < len(buf); i += 2 {
		digraphs = append(digraphs, domain.Digraph{buf[i], buf[i+1]})
	}
	return digraphs
}

// filler picks the letter inserted to break a repeat or pad an odd tail:
// Z when the letter it follows is X, otherwise X.
func filler(after byte) byte {
	if after == 'X' {
		return 'Z'
	}
	return 'X'
}
