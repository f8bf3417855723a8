package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gearscan/adjacency"
	"github.com/katalvlaran/gearscan/report"
	"github.com/katalvlaran/gearscan/schematic"
	"github.com/katalvlaran/gearscan/token"
)

func TestSumParts(t *testing.T) {
	assert.Equal(t, 0, report.SumParts(nil))
	assert.Equal(t, 581, report.SumParts([]token.Token{{Value: 467}, {Value: 114}}))
}

// TestSumGearRatios skips every candidate that is not in GearTwoValues.
func TestSumGearRatios(t *testing.T) {
	var one, two, over adjacency.GearCandidate
	one.Observe(5)
	two.Observe(3)
	two.Observe(4)
	over.Observe(1)
	over.Observe(2)
	over.Observe(3)

	got := report.SumGearRatios([]adjacency.GearCandidate{{}, one, two, over})
	assert.Equal(t, 12, got)
}

func TestBuild(t *testing.T) {
	cases := []struct {
		name string
		grid string
		want report.Report
	}{
		{
			name: "NoSymbols",
			grid: "467..114..",
			want: report.Report{Tokens: 2},
		},
		{
			name: "Classic",
			grid: "467..114..\n...*......\n..35..633.\n......#...\n617*......\n.....+.58.\n..592.....\n......755.\n...$.*....\n.664.598..",
			want: report.Report{PartSum: 4361, GearRatioSum: 467835, Tokens: 10, Parts: 8, Gears: 2},
		},
		{
			name: "LoneGear",
			grid: "...331..3\n...&401..\n.2%..*...",
			want: report.Report{PartSum: 734, GearRatioSum: 0, Tokens: 4, Parts: 3, Gears: 0},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := schematic.Parse(tc.grid)
			require.NoError(t, err)
			toks := token.Scan(s)
			got := report.Build(toks, adjacency.Aggregate(s, toks))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReport_String(t *testing.T) {
	r := report.Report{PartSum: 4361, GearRatioSum: 467835}
	assert.Equal(t, "parts=4361 gear_ratios=467835", r.String())
}
