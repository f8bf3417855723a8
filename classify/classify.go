// Package classify holds the character predicates of a schematic.
// Every function is total, pure and safe for concurrent use.
package classify

// Empty is the character of an empty cell.
const Empty = '.'

// Gear is the distinguished symbol eligible to form a gear ratio.
const Gear = '*'

// Kind classifies a single schematic character.
type Kind int

const (
	// KindEmpty is the '.' cell.
	KindEmpty Kind = iota
	// KindDigit is an ASCII digit.
	KindDigit
	// KindSymbol is any other character except the gear symbol.
	KindSymbol
	// KindGear is the '*' symbol.
	KindGear
)

// String returns a lower-case name for k.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindDigit:
		return "digit"
	case KindSymbol:
		return "symbol"
	case KindGear:
		return "gear"
	default:
		return "unknown"
	}
}

// IsDigit reports whether r is an ASCII digit '0'..'9'.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsEmpty reports whether r is the empty-cell character.
func IsEmpty(r rune) bool {
	return r == Empty
}

// IsSymbol reports whether r is neither '.' nor an ASCII digit.
// Gear symbols are symbols too.
func IsSymbol(r rune) bool {
	return !IsEmpty(r) && !IsDigit(r)
}

// IsGearSymbol reports whether r is '*'.
func IsGearSymbol(r rune) bool {
	return r == Gear
}

// Of returns the Kind of r.
func Of(r rune) Kind {
	switch {
	case IsEmpty(r):
		return KindEmpty
	case IsDigit(r):
		return KindDigit
	case IsGearSymbol(r):
		return KindGear
	default:
		return KindSymbol
	}
}
