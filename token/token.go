// Package token extracts numeric tokens, the maximal runs of ASCII digits,
// from a schematic.
//
// Scanning is a single linear pass per row that tracks where the current
// run started; rows are independent of each other. Tokens carry their
// decoded value plus position, not slices of the source text.
//
// Complexity: Scan is O(W×H) time, O(T) memory for T tokens.
package token

import (
	"fmt"

	"github.com/katalvlaran/gearscan/classify"
	"github.com/katalvlaran/gearscan/schematic"
)

// Token is a maximal run of digits in one row.
type Token struct {
	Value int // base-10 value of the run, leading zeros allowed
	Row   int // row of the run
	Col   int // column of the leftmost digit
	Len   int // number of digits, always ≥ 1
}

// Start returns the coordinate of the leftmost digit.
func (t Token) Start() schematic.Coord {
	return schematic.Coord{Row: t.Row, Col: t.Col}
}

// Cells returns the coordinates the token occupies, left to right.
func (t Token) Cells() []schematic.Coord {
	out := make([]schematic.Coord, t.Len)
	for i := range out {
		out[i] = schematic.Coord{Row: t.Row, Col: t.Col + i}
	}

	return out
}

// String formats the token as "value@(row,col)".
func (t Token) String() string {
	return fmt.Sprintf("%d@%v", t.Value, t.Start())
}

// Scan returns every token of s, left to right within a row and rows top to bottom.
func Scan(s *schematic.Schematic) []Token {
	var out []Token
	for r := 0; r < s.Height(); r++ {
		out = append(out, ScanRow(r, s.Row(r))...)
	}

	return out
}

// ScanRow returns the tokens of a single row. row is only recorded in the
// resulting tokens.
func ScanRow(row int, cells []rune) []Token {
	var out []Token
	start, value := -1, 0
	for c, ch := range cells {
		if classify.IsDigit(ch) {
			if start < 0 {
				start, value = c, 0
			}
			value = value*10 + int(ch-'0')
			continue
		}
		if start >= 0 {
			out = append(out, Token{Value: value, Row: row, Col: start, Len: c - start})
			start = -1
		}
	}
	// run reaching the right edge
	if start >= 0 {
		out = append(out, Token{Value: value, Row: row, Col: start, Len: len(cells) - start})
	}

	return out
}
