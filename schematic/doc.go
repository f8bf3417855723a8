// Package schematic holds an engine schematic: a rectangular 2D grid of
// single characters made of digit runs ("parts"), empty cells ('.') and
// symbols.
//
// What:
//
//   - Schematic wraps a non-empty, rectangular grid of runes and is immutable once built.
//   - Coord addresses a cell by signed (Row, Col), so callers may probe past the edges.
//   - At returns (rune, false) for any coordinate outside the grid instead of failing.
//
// Why:
//
//   - Neighbor probing around tokens at the grid edges is frequent and expected;
//     bounds filtering lives here so coordinate geometry elsewhere stays pure.
//
// Complexity:
//
//   - New / Parse: O(W×H) time and memory (deep copy).
//   - At, InBounds: O(1).
//
// Errors:
//
//   - ErrEmptyInput: no rows, or a zero-length first row.
//   - ErrRaggedGrid: rows have differing lengths.
//   - ErrInvalidCell: a cell is whitespace or a control character.
package schematic
