// Package adjacency decides which tokens of a schematic are target parts
// and which gear symbols collect exactly two tokens.
//
// For every token, Aggregate walks the token's perimeter (package neighbor),
// keeps the in-bounds cells (schematic.At) and
//
//   - marks the token a target part if any cell is a symbol;
//   - feeds the token's value once into the GearCandidate of every distinct
//     '*' cell it touches.
//
// Gear candidates live in an arena in creation order, indexed by coordinate.
// Processing order only changes which value sits in which slot; the ratio is
// unaffected.
//
// Complexity: O(Σ(2L+6)) over all tokens, O(G) memory for G gear candidates.
package adjacency

import (
	"github.com/katalvlaran/gearscan/classify"
	"github.com/katalvlaran/gearscan/neighbor"
	"github.com/katalvlaran/gearscan/schematic"
	"github.com/katalvlaran/gearscan/token"
)

// Result is the finalized output of Aggregate. It is read-only.
type Result struct {
	// Parts are the target parts, in input order.
	Parts []token.Token
	// Idle are the tokens touching no symbol, in input order.
	Idle []token.Token

	gears []GearCandidate
	index map[schematic.Coord]int
}

// Gears returns a copy of all gear candidates in creation order.
func (r *Result) Gears() []GearCandidate {
	out := make([]GearCandidate, len(r.gears))
	copy(out, r.gears)

	return out
}

// Gear returns the candidate at c, if any token touched it.
func (r *Result) Gear(c schematic.Coord) (GearCandidate, bool) {
	i, ok := r.index[c]
	if !ok {
		return GearCandidate{}, false
	}

	return r.gears[i], true
}

// ValidGears returns the candidates that ended in GearTwoValues.
func (r *Result) ValidGears() []GearCandidate {
	var out []GearCandidate
	for _, g := range r.gears {
		if g.Valid() {
			out = append(out, g)
		}
	}

	return out
}

// IsTargetPart reports whether any in-bounds perimeter cell of t is a symbol.
func IsTargetPart(s *schematic.Schematic, t token.Token) bool {
	for _, c := range neighbor.Perimeter(t.Row, t.Col, t.Len) {
		if ch, ok := s.At(c); ok && classify.IsSymbol(ch) {
			return true
		}
	}

	return false
}

// Aggregate classifies tokens against s and collects gear candidates.
// tokens is normally token.Scan(s), but any order is accepted.
func Aggregate(s *schematic.Schematic, tokens []token.Token) *Result {
	res := &Result{index: make(map[schematic.Coord]int)}
	// gear cells already credited to the current token
	touched := make(map[schematic.Coord]struct{}, 4)

	for _, t := range tokens {
		part := false
		clear(touched)
		for _, c := range neighbor.Perimeter(t.Row, t.Col, t.Len) {
			ch, ok := s.At(c)
			if !ok || !classify.IsSymbol(ch) {
				continue
			}
			part = true
			if !classify.IsGearSymbol(ch) {
				continue
			}
			if _, dup := touched[c]; dup {
				continue
			}
			touched[c] = struct{}{}
			res.observe(c, t.Value)
		}
		if part {
			res.Parts = append(res.Parts, t)
		} else {
			res.Idle = append(res.Idle, t)
		}
	}

	return res
}

// observe lazily creates the candidate at c and records v into it.
func (r *Result) observe(c schematic.Coord, v int) {
	i, ok := r.index[c]
	if !ok {
		i = len(r.gears)
		r.gears = append(r.gears, GearCandidate{At: c})
		r.index[c] = i
	}
	r.gears[i].Observe(v)
}
