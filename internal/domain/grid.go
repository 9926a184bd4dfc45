package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the side length of a Playfair grid.
const Size = 5

// ErrInvalidGrid is returned when a grid layout is not a permutation of the
// 25-letter reduced alphabet.
var ErrInvalidGrid = errors.New("domain: grid must contain each reduced-alphabet letter exactly once")

// Position locates a letter within a Grid. Row and Col are in [0,4].
type Position struct {
	Row int
	Col int
}

// Grid is an immutable 5x5 table holding each of the 25 reduced-alphabet
// letters (A-Z with J merged into I) exactly once. It carries a precomputed
// letter-to-position index so lookups during encoding are constant time.
//
// The zero Grid is empty: At returns zero bytes and Position reports every
// letter as absent. Build grids with NewGrid.
type Grid struct {
	cells [Size][Size]byte

	// index maps letter-'A' to 1+row*Size+col; zero means absent.
	index [26]int8
}

// NewGrid lays out the given letters row-major and returns the resulting
// grid. It fails with ErrInvalidGrid unless the letters are a permutation of
// the reduced alphabet.
func NewGrid(letters [Size * Size]byte) (Grid, error) {
	var g Grid
	for i, l := range letters {
		if l < 'A' || l > 'Z' || l == 'J' {
			return Grid{}, fmt.Errorf("%w: %q is outside the alphabet", ErrInvalidGrid, l)
		}
		if g.index[l-'A'] != 0 {
			return Grid{}, fmt.Errorf("%w: %q appears twice", ErrInvalidGrid, l)
		}
		g.index[l-'A'] = int8(1 + i)
		g.cells[i/Size][i%Size] = l
	}
	return g, nil
}

// At returns the letter at the given row and column.
func (g Grid) At(row, col int) byte { return g.cells[row][col] }

// Position returns the location of a letter and whether it is present.
func (g Grid) Position(letter byte) (Position, bool) {
	if letter < 'A' || letter > 'Z' {
		return Position{}, false
	}
	i := g.index[letter-'A']
	if i == 0 {
		return Position{}, false
	}
	i--
	return Position{Row: int(i) / Size, Col: int(i) % Size}, true
}

// Row returns one row of the grid.
func (g Grid) Row(i int) [Size]byte { return g.cells[i] }

// Rows returns the grid as a 5x5 array of letters, the display form
// presented to callers.
func (g Grid) Rows() [Size][Size]byte { return g.cells }

// Letters returns the grid contents in row-major order.
func (g Grid) Letters() [Size * Size]byte {
	var out [Size * Size]byte
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			out[r*Size+c] = g.cells[r][c]
		}
	}
	return out
}

// String renders the grid as five space-separated rows, one per line.
func (g Grid) String() string {
	var b strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < Size; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(g.cells[r][c])
		}
	}
	return b.String()
}
