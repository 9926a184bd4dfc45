package playfair

import (
	"fmt"

	"playfair/internal/domain"
)

// Encode substitutes one digraph by position in the grid:
//
//   - same row: each column advances by one, wrapping at the edge
//   - same column: each row advances by one, wrapping at the edge
//   - otherwise: the columns swap and the rows stay, so encoding the result
//     again returns the original pair
//
// Fails with ErrLetterNotFound if either letter is absent from the grid.
func Encode(g domain.Grid, d domain.Digraph) (domain.Digraph, error) {
	p1, ok := g.Position(d[0])
	if !ok {
		return domain.Digraph{}, fmt.Errorf("%w: %c", ErrLetterNotFound, d[0])
	}
	p2, ok := g.Position(d[1])
	if !ok {
		return domain.Digraph{}, fmt.Errorf("%w: %c", ErrLetterNotFound, d[1])
	}

	switch {
	case p1.Row == p2.Row:
		return domain.Digraph{
			g.At(p1.Row, (p1.Col+1)%domain.Size),
			g.At(p2.Row, (p2.Col+1)%domain.Size),
		}, nil
	case p1.Col == p2.Col:
		return domain.Digraph{
			g.At((p1.Row+1)%domain.Size, p1.Col),
			g.At((p2.Row+1)%domain.Size, p2.Col),
		}, nil
	default:
		return domain.Digraph{
			g.At(p1.Row, p2.Col),
			g.At(p2.Row, p1.Col),
		}, nil
	}
}
