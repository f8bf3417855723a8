// Package report folds the output of adjacency.Aggregate into the two
// schematic metrics: the sum of target-part values and the sum of gear ratios.
package report

import (
	"fmt"

	"github.com/katalvlaran/gearscan/adjacency"
	"github.com/katalvlaran/gearscan/token"
)

// Report is the final summary of one analysis.
type Report struct {
	PartSum      int `json:"part_sum" yaml:"part_sum"`
	GearRatioSum int `json:"gear_ratio_sum" yaml:"gear_ratio_sum"`

	Tokens int `json:"tokens" yaml:"tokens"` // all tokens scanned
	Parts  int `json:"parts" yaml:"parts"`   // tokens adjacent to a symbol
	Gears  int `json:"gears" yaml:"gears"`   // gears with exactly two tokens
}

// SumParts returns the sum of the values of parts.
func SumParts(parts []token.Token) int {
	sum := 0
	for _, p := range parts {
		sum += p.Value
	}

	return sum
}

// SumGearRatios returns the sum of ratios of the candidates in the
// GearTwoValues state; every other candidate is skipped.
func SumGearRatios(gears []adjacency.GearCandidate) int {
	sum := 0
	for _, g := range gears {
		if r, ok := g.Ratio(); ok {
			sum += r
		}
	}

	return sum
}

// Build assembles the Report for tokens aggregated into res.
func Build(tokens []token.Token, res *adjacency.Result) Report {
	valid := res.ValidGears()

	return Report{
		PartSum:      SumParts(res.Parts),
		GearRatioSum: SumGearRatios(valid),
		Tokens:       len(tokens),
		Parts:        len(res.Parts),
		Gears:        len(valid),
	}
}

// String renders the two metrics on one line.
func (r Report) String() string {
	return fmt.Sprintf("parts=%d gear_ratios=%d", r.PartSum, r.GearRatioSum)
}
