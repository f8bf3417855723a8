// Package engine runs the whole schematic pipeline in one call:
//
//	text ─► schematic.Parse ─► token.Scan ─► adjacency.Aggregate ─► report.Build
//
// An analysis is single-threaded and owns all of its intermediate state;
// separate analyses may run concurrently. Construction errors abort the run
// and no partial report is returned.
package engine

import (
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/gearscan/adjacency"
	"github.com/katalvlaran/gearscan/report"
	"github.com/katalvlaran/gearscan/schematic"
	"github.com/katalvlaran/gearscan/token"
)

// Analysis holds every stage of one run. All fields are read-only.
type Analysis struct {
	Schematic *schematic.Schematic
	Tokens    []token.Token
	Result    *adjacency.Result
	Report    report.Report
}

// Analyze parses text as a schematic and reports its parts and gear ratios.
// Errors are those of schematic.Parse (ErrEmptyInput, ErrRaggedGrid, ErrInvalidCell).
func Analyze(text string, opts ...Option) (*Analysis, error) {
	o := resolve(opts)
	s, err := schematic.Parse(text)
	if err != nil {
		o.Logger.Debug("schematic rejected", zap.String("input", o.Name), zap.Error(err))
		return nil, err
	}

	return run(s, o), nil
}

// AnalyzeReader reads r fully, then behaves like Analyze.
func AnalyzeReader(r io.Reader, opts ...Option) (*Analysis, error) {
	o := resolve(opts)
	s, err := schematic.Read(r)
	if err != nil {
		o.Logger.Debug("schematic rejected", zap.String("input", o.Name), zap.Error(err))
		return nil, err
	}

	return run(s, o), nil
}

// AnalyzeSchematic runs the pipeline on an already built schematic.
func AnalyzeSchematic(s *schematic.Schematic, opts ...Option) *Analysis {
	return run(s, resolve(opts))
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func run(s *schematic.Schematic, o Options) *Analysis {
	log := o.Logger.With(zap.String("input", o.Name))
	log.Debug("schematic loaded", zap.Int("width", s.Width()), zap.Int("height", s.Height()))

	toks := token.Scan(s)
	res := adjacency.Aggregate(s, toks)
	rep := report.Build(toks, res)

	log.Debug("schematic analyzed",
		zap.Int("tokens", rep.Tokens),
		zap.Int("parts", rep.Parts),
		zap.Int("gear_candidates", len(res.Gears())),
		zap.Int("gears", rep.Gears),
		zap.Int("part_sum", rep.PartSum),
		zap.Int("gear_ratio_sum", rep.GearRatioSum))

	return &Analysis{Schematic: s, Tokens: toks, Result: res, Report: rep}
}
