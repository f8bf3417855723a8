package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gearscan/config"
	"github.com/katalvlaran/gearscan/render"
)

// Standard input is selected with "-" and labelled <stdin>.
const (
	stdinArg  = "-"
	stdinName = "<stdin>"
)

// app carries flag values and the state built before each command runs.
type app struct {
	cfgPath string
	verbose bool
	format  string
	color   string
	workers int

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "gearscan",
		Short: "Sum part numbers and gear ratios of engine schematics",
		Long: `gearscan reads engine schematics: grids of digits, '.' and symbols.

A number is a part when it touches a symbol, diagonals included. A '*' is a
gear when it touches exactly two numbers; its ratio is their product.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgPath, "config", "c", "", "YAML configuration file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&a.color, "color", config.ColorAuto, "colorize output: auto, always or never")
	_ = root.RegisterFlagCompletionFunc("color", fixedCompletion(config.ColorModes))

	root.AddCommand(newAnalyzeCmd(a), newRenderCmd(a), newVersionCmd())

	return root
}

// setup loads the configuration, applies flag overrides and builds the logger.
// Defaults < config file < flags.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output.Format = a.format
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("color") {
		cfg.Output.Color = a.color
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := cfg.Logger()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.cfg, a.logger = cfg, logger
	a.logger.Debug("configuration loaded",
		zap.String("path", a.cfgPath),
		zap.String("format", cfg.Output.Format),
		zap.String("color", cfg.Output.Color),
		zap.Int("workers", cfg.Workers))

	return nil
}

// renderer returns a Renderer writing for w under the configured color mode.
func (a *app) renderer(w io.Writer) *render.Renderer {
	switch a.cfg.Output.Color {
	case config.ColorNever:
		return render.New(render.WithColor(false))
	case config.ColorAlways:
		lg := lipgloss.NewRenderer(w)
		lg.SetColorProfile(termenv.ANSI256)
		return render.New(render.WithRenderer(lg))
	default:
		return render.New(render.WithRenderer(lipgloss.NewRenderer(w)))
	}
}

// open returns a reader for one input argument and its display name.
func open(cmd *cobra.Command, arg string) (io.ReadCloser, string, error) {
	if arg == stdinArg {
		return io.NopCloser(cmd.InOrStdin()), stdinName, nil
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, arg, err
	}

	return f, arg, nil
}

func fixedCompletion(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return slices.Clone(values), cobra.ShellCompDirectiveNoFileComp
	}
}
