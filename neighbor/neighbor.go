// Package neighbor enumerates the adjacency perimeter of a horizontal run
// of cells, diagonals included.
//
// The enumeration is pure coordinate geometry: it neither deduplicates nor
// bounds-checks. Coordinates may lie outside any concrete grid; filtering
// them is left to schematic.Schematic.At.
//
//	 . . . . .        row-1, cols col-1 .. col+len
//	 . 4 6 7 .        flanks (row, col-1) and (row, col+len)
//	 . . . . .        row+1, cols col-1 .. col+len
//
// A run of length L always yields exactly 2L+6 coordinates.
package neighbor

import "github.com/katalvlaran/gearscan/schematic"

// Size returns the number of perimeter cells of a run of the given length.
func Size(length int) int {
	return 2*length + 6
}

// Perimeter returns the cells surrounding a run that starts at (row, col)
// and spans length cells to the right. Order: the row above left to right,
// the left then right flank, the row below left to right.
// Complexity: O(length).
func Perimeter(row, col, length int) []schematic.Coord {
	out := make([]schematic.Coord, 0, Size(length))
	for c := col - 1; c <= col+length; c++ {
		out = append(out, schematic.Coord{Row: row - 1, Col: c})
	}
	out = append(out,
		schematic.Coord{Row: row, Col: col - 1},
		schematic.Coord{Row: row, Col: col + length},
	)
	for c := col - 1; c <= col+length; c++ {
		out = append(out, schematic.Coord{Row: row + 1, Col: c})
	}

	return out
}

// Around returns the eight neighbors of a single cell.
func Around(c schematic.Coord) []schematic.Coord {
	return Perimeter(c.Row, c.Col, 1)
}
