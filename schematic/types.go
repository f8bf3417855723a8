package schematic

import (
	"errors"
	"fmt"
)

// Sentinel errors for schematic construction.
var (
	// ErrEmptyInput indicates the input has no rows or its first row is empty.
	ErrEmptyInput = errors.New("schematic: input must have at least one row and one column")
	// ErrRaggedGrid indicates rows of differing lengths.
	ErrRaggedGrid = errors.New("schematic: all rows must have the same length")
	// ErrInvalidCell indicates a whitespace or control character inside the grid.
	ErrInvalidCell = errors.New("schematic: invalid cell character")
)

// Coord is a (Row, Col) position. Components are signed so that neighbor
// arithmetic may step outside the grid before a bounds-checked lookup.
type Coord struct {
	Row, Col int
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Schematic is an immutable rectangular grid of characters.
// cells[r][c] holds the character at row r, column c.
type Schematic struct {
	width, height int
	cells         [][]rune
}
