package adjacency

import (
	"fmt"

	"github.com/katalvlaran/gearscan/schematic"
)

// GearState is the state of a gear candidate.
//
//	GearEmpty → GearOneValue → GearTwoValues → GearOverflowed
//
// Each Observe moves one step right. GearOverflowed is absorbing.
type GearState int

const (
	// GearEmpty has seen no adjacent token.
	GearEmpty GearState = iota
	// GearOneValue has seen exactly one adjacent token.
	GearOneValue
	// GearTwoValues has seen exactly two adjacent tokens; the only valid gear.
	GearTwoValues
	// GearOverflowed has seen three or more adjacent tokens and is disqualified.
	GearOverflowed
)

// String returns a short name for s.
func (s GearState) String() string {
	switch s {
	case GearEmpty:
		return "empty"
	case GearOneValue:
		return "one"
	case GearTwoValues:
		return "two"
	case GearOverflowed:
		return "overflowed"
	default:
		return fmt.Sprintf("GearState(%d)", int(s))
	}
}

// GearCandidate tracks the tokens observed around one '*' cell.
type GearCandidate struct {
	At     schematic.Coord
	state  GearState
	values [2]int
}

// State returns the current state.
func (g GearCandidate) State() GearState { return g.state }

// Values returns the recorded values in observation order. Slots not yet
// filled are omitted; an overflowed candidate still reports its first two.
func (g GearCandidate) Values() []int {
	switch g.state {
	case GearEmpty:
		return nil
	case GearOneValue:
		return []int{g.values[0]}
	default:
		return []int{g.values[0], g.values[1]}
	}
}

// Valid reports whether the candidate ended with exactly two tokens.
func (g GearCandidate) Valid() bool { return g.state == GearTwoValues }

// Ratio returns the product of the two values. ok is false unless Valid.
func (g GearCandidate) Ratio() (ratio int, ok bool) {
	if !g.Valid() {
		return 0, false
	}

	return g.values[0] * g.values[1], true
}

// Observe records one adjacent token value and returns the new state.
// Once overflowed the candidate ignores further observations.
func (g *GearCandidate) Observe(v int) GearState {
	switch g.state {
	case GearEmpty:
		g.values[0] = v
		g.state = GearOneValue
	case GearOneValue:
		g.values[1] = v
		g.state = GearTwoValues
	case GearTwoValues:
		g.state = GearOverflowed
	}

	return g.state
}
