// Package playfair implements the encryption direction of the classical
// Playfair digraph substitution cipher: deriving a 5x5 letter grid from a
// keyword, normalizing a message into digraphs, and substituting each
// digraph by position.
//
// The alphabet is the 25 Latin letters A-Z with J merged into I. Keyword and
// message cleaning are identical: uppercase, drop non-letters, map J to I.
//
// Errors:
//   - ErrInvalidKeyword: the keyword has no alphabetic characters after cleaning.
//   - ErrLetterNotFound: a digraph letter is absent from the grid.
package playfair
