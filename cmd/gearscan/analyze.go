package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gearscan/config"
	"github.com/katalvlaran/gearscan/engine"
	"github.com/katalvlaran/gearscan/report"
)

// errStdinTwice rejects reading standard input more than once.
var errStdinTwice = errors.New("standard input may be given only once")

// result is one analyzed input as written by json and yaml output.
type result struct {
	Input         string `json:"input" yaml:"input"`
	report.Report `yaml:",inline"`
}

func newAnalyzeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file ...]",
		Short: "Report part sums and gear ratio sums",
		Long: `Analyze one or more schematic files. With no file, or with "-", the
schematic is read from standard input. Files are analyzed concurrently and
reported in argument order; the first failure aborts the run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{stdinArg}
			}
			results, err := a.analyzeAll(cmd, args)
			if err != nil {
				return err
			}

			return a.write(cmd.OutOrStdout(), results)
		},
	}
	cmd.Flags().StringVarP(&a.format, "output", "o", config.FormatText, "output format: text, json or yaml")
	cmd.Flags().IntVarP(&a.workers, "workers", "w", 0, "files analyzed concurrently (default from config)")
	_ = cmd.RegisterFlagCompletionFunc("output", fixedCompletion(config.Formats))

	return cmd
}

// analyzeAll runs one independent analysis per argument, at most
// cfg.Workers at a time, and returns the results in argument order.
func (a *app) analyzeAll(cmd *cobra.Command, args []string) ([]result, error) {
	stdin := 0
	for _, arg := range args {
		if arg == stdinArg {
			stdin++
		}
	}
	if stdin > 1 {
		return nil, errStdinTwice
	}

	results := make([]result, len(args))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(a.cfg.Workers)
	for i, arg := range args {
		g.Go(func() error {
			rep, name, err := a.analyzeOne(ctx, cmd, arg)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			results[i] = result{Input: name, Report: rep}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (a *app) analyzeOne(ctx context.Context, cmd *cobra.Command, arg string) (report.Report, string, error) {
	if err := ctx.Err(); err != nil {
		return report.Report{}, arg, err
	}
	rc, name, err := open(cmd, arg)
	if err != nil {
		return report.Report{}, name, err
	}
	defer rc.Close()

	an, err := engine.AnalyzeReader(rc, engine.WithLogger(a.logger), engine.WithName(name))
	if err != nil {
		return report.Report{}, name, err
	}
	a.logger.Info("analyzed", zap.String("input", name), zap.Stringer("report", an.Report))

	return an.Report, name, nil
}

// write renders results in the configured format.
func (a *app) write(w io.Writer, results []result) error {
	switch a.cfg.Output.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	default:
		r := a.renderer(w)
		blocks := make([]string, len(results))
		for i, res := range results {
			blocks[i] = r.Report(res.Input, res.Report)
		}
		_, err := fmt.Fprintln(w, strings.Join(blocks, "\n\n"))
		return err
	}
}
