package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"movieinfo/internal/config"
	"movieinfo/internal/enrich"
	"movieinfo/internal/logging"
	"movieinfo/internal/omdb"
	"movieinfo/internal/runlock"
	"movieinfo/internal/services"
	"movieinfo/internal/tabular"
)

var errLookupFailures = errors.New("one or more lookups failed; see the log for details")

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var overrides config.Overrides
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Look up every title in the input CSV and write Title/Year rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.configCopy()
			if err != nil {
				return err
			}
			if err := cfg.Apply(overrides); err != nil {
				return fmt.Errorf("apply flags: %w", err)
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}
			baseLogger, closeLog, err := ctx.newLogger(cmd, cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer closeLog()

			runID := uuid.NewString()
			runCtx := services.WithRunID(cmd.Context(), runID)
			logger := logging.WithContext(runCtx, logging.NewComponentLogger(baseLogger, "extract"))

			lock, err := runlock.Acquire(cfg.Paths.OutputFile)
			if err != nil {
				return err
			}
			defer func() {
				if err := lock.Release(); err != nil {
					logger.Warn("release run lock", logging.Error(err))
				}
			}()

			src, err := tabular.Open(cfg.Paths.InputFile, cfg.Input.Encoding)
			if err != nil {
				return err
			}
			defer src.Close()

			sink, err := tabular.Create(cfg.Paths.OutputFile)
			if err != nil {
				return err
			}

			client, err := omdb.New(cfg.OMDb.BaseURL,
				omdb.WithTimeout(cfg.LookupTimeout()),
				omdb.WithUserAgent(cfg.OMDb.UserAgent),
			)
			if err != nil {
				_ = sink.Close()
				return err
			}
			policy := enrich.PolicyBlank
			if cfg.AbortOnError() {
				policy = enrich.PolicyAbort
			}
			// The pipeline tags its own component; run_id and row come from runCtx.
			pipeline, err := enrich.New(client,
				enrich.WithLogger(baseLogger),
				enrich.WithTimeout(cfg.LookupTimeout()),
				enrich.WithPolicy(policy),
			)
			if err != nil {
				_ = sink.Close()
				return err
			}

			logger.Info("extract started",
				logging.String("input", cfg.Paths.InputFile),
				logging.String("output", cfg.Paths.OutputFile),
				logging.String("on_error", string(policy)),
			)

			summary, runErr := pipeline.Run(runCtx, src, sink)
			if err := sink.Close(); err != nil && runErr == nil {
				runErr = fmt.Errorf("close output: %w", err)
			}
			summary.RunID = runID
			summary.Input = cfg.Paths.InputFile
			summary.Output = cfg.Paths.OutputFile

			logger.Info("extract finished",
				logging.Int("rows_read", summary.Read),
				logging.Int("rows_written", summary.Written),
				logging.Int("failed", summary.Failed),
				logging.Duration("duration", summary.Duration),
			)

			if err := printSummary(cmd, summary, jsonOutput); err != nil {
				return err
			}
			if runErr != nil {
				return runErr
			}
			if summary.HasFailures() {
				return errLookupFailures
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&overrides.InputFile, "input", "i", "", "Input CSV (overrides paths.input_file)")
	cmd.Flags().StringVarP(&overrides.OutputFile, "output", "o", "", "Output CSV (overrides paths.output_file)")
	cmd.Flags().StringVar(&overrides.OnError, "on-error", "", "Failure policy: blank or abort (overrides extract.on_error)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the run summary as JSON")
	return cmd
}

func printSummary(cmd *cobra.Command, summary enrich.Summary, jsonOutput bool) error {
	out := cmd.OutOrStdout()
	if jsonOutput || !isTerminal(out) {
		return writeJSON(cmd, summary)
	}
	fmt.Fprintln(out, renderSummary(summary))
	return nil
}
