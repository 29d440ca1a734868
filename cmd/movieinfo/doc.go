// Package main hosts the movieinfo CLI entrypoint and command graph.
//
// The Cobra command tree loads configuration once, applies per-invocation
// flag overrides, and hands work to the internal packages: extract runs the
// enrichment pipeline over the configured CSV files, lookup resolves a single
// title, check runs preflight probes, and config scaffolds or validates the
// TOML file. Human-facing summaries are rendered as tables when stdout is a
// terminal and as JSON otherwise.
package main
