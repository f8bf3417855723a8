package schematic

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// New constructs a Schematic from a non-empty slice of equal-length rows.
// It copies the input, so later changes to rows do not affect the result.
// Returns ErrEmptyInput if rows is empty or rows[0] is "",
// ErrRaggedGrid if any row length differs from the first,
// ErrInvalidCell if a cell is whitespace or a control character.
// Complexity: O(W×H) time and memory.
func New(rows []string) (*Schematic, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyInput
	}
	cells := make([][]rune, len(rows))
	w := -1
	for r, line := range rows {
		row := []rune(line)
		if w < 0 {
			w = len(row)
		}
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, r, len(row), w)
		}
		for c, ch := range row {
			if unicode.IsSpace(ch) || unicode.IsControl(ch) {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidCell, ch, r, c)
			}
		}
		cells[r] = row
	}

	return &Schematic{width: w, height: len(rows), cells: cells}, nil
}

// Parse splits text into lines and builds a Schematic from them.
// A trailing "\r" is stripped from every line and trailing empty lines are
// dropped, so text read from a file ending in a newline parses cleanly.
func Parse(text string) (*Schematic, error) {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return New(lines)
}

// Read consumes r entirely and parses the result with Parse.
func Read(r io.Reader) (*Schematic, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("schematic: read input: %w", err)
	}

	return Parse(string(data))
}

// Width returns the number of columns.
func (s *Schematic) Width() int { return s.width }

// Height returns the number of rows.
func (s *Schematic) Height() int { return s.height }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (s *Schematic) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < s.height && c.Col >= 0 && c.Col < s.width
}

// At returns the character at c. The second result is false, and the rune
// zero, when c lies outside the grid; out-of-bounds probes are not errors.
// Complexity: O(1).
func (s *Schematic) At(c Coord) (rune, bool) {
	if !s.InBounds(c) {
		return 0, false
	}

	return s.cells[c.Row][c.Col], true
}

// Row returns a copy of row r, or nil if r is out of range.
func (s *Schematic) Row(r int) []rune {
	if r < 0 || r >= s.height {
		return nil
	}
	out := make([]rune, s.width)
	copy(out, s.cells[r])

	return out
}

// String renders the grid back to text, one line per row, without a trailing newline.
func (s *Schematic) String() string {
	var b strings.Builder
	for r, row := range s.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}

	return b.String()
}

// Index maps c to a row-major index: Row*Width + Col.
// The result is meaningless for coordinates outside the grid.
func (s *Schematic) Index(c Coord) int {
	return c.Row*s.width + c.Col
}

// Coordinate converts a row-major index back to a Coord.
func (s *Schematic) Coordinate(idx int) Coord {
	return Coord{Row: idx / s.width, Col: idx % s.width}
}
