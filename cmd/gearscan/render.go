package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gearscan/engine"
)

func newRenderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render [file]",
		Short: "Print the schematic with parts and gears highlighted",
		Long: `Render prints the schematic with target parts, idle numbers, valid
gears and symbols styled apart, followed by the summary. With no file, or
with "-", the schematic is read from standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := stdinArg
			if len(args) == 1 {
				arg = args[0]
			}
			rc, name, err := open(cmd, arg)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			defer rc.Close()

			an, err := engine.AnalyzeReader(rc, engine.WithLogger(a.logger), engine.WithName(name))
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			out := cmd.OutOrStdout()
			r := a.renderer(out)
			_, err = fmt.Fprintf(out, "%s\n\n%s\n", r.Schematic(an), r.Report(name, an.Report))
			return err
		},
	}
}
