package preflight

import (
	"context"

	"movieinfo/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// RunAll executes every preflight check for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckInputFile("Input file", cfg.Paths.InputFile, cfg.Input.Encoding),
		CheckOutputDirectory("Output directory", cfg.Paths.OutputFile),
	}
	if cfg.Paths.LogDir != "" {
		results = append(results, CheckWritableDirectory("Log directory", cfg.Paths.LogDir))
	}
	results = append(results, CheckOMDb(ctx, cfg))
	return results
}

// AllPassed reports whether every result passed.
func AllPassed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
