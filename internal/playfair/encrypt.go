package playfair

import "strings"

// Encrypt runs the full pipeline: derive the grid, normalize the message,
// encode every digraph in order and concatenate the results. A message with
// no letters yields an empty ciphertext. ErrInvalidKeyword propagates
// unchanged from grid construction.
func Encrypt(keyword, message string) (string, error) {
	g, err := BuildGrid(keyword)
	if err != nil {
		return "", err
	}

	digraphs := Normalize(message)
	var b strings.Builder
	b.Grow(len(digraphs) * 2)
	for _, d := range digraphs {
		e, err := Encode(g, d)
		if err != nil {
			return "", err
		}
		b.Write(e[:])
	}
	return b.String(), nil
}
