package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"movieinfo/internal/config"
	"movieinfo/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var overrides config.Overrides
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the input file, output directory, and OMDb endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.configCopy()
			if err != nil {
				return err
			}
			if err := cfg.Apply(overrides); err != nil {
				return fmt.Errorf("apply flags: %w", err)
			}

			results := preflight.RunAll(cmd.Context(), cfg)
			out := cmd.OutOrStdout()
			if jsonOutput {
				if err := writeJSON(cmd, results); err != nil {
					return err
				}
			} else {
				colorize := isTerminal(out)
				for _, r := range results {
					fmt.Fprintln(out, renderCheckLine(r, colorize))
				}
			}
			if !preflight.AllPassed(results) {
				return errors.New("preflight checks failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&overrides.InputFile, "input", "i", "", "Input CSV (overrides paths.input_file)")
	cmd.Flags().StringVarP(&overrides.OutputFile, "output", "o", "", "Output CSV (overrides paths.output_file)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")
	return cmd
}
