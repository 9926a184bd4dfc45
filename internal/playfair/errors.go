package playfair

import "errors"

var (
	// ErrInvalidKeyword indicates a keyword with no alphabetic characters
	// after cleaning.
	ErrInvalidKeyword = errors.New("playfair: keyword must contain at least one letter")
	// ErrLetterNotFound indicates a digraph letter absent from the grid.
	// Grids built by BuildGrid span the full reduced alphabet, so this only
	// fires on digraphs from outside the pipeline.
	ErrLetterNotFound = errors.New("playfair: letter not found in grid")
)
