// Package logging assembles the structured slog loggers used by movieinfo.
//
// It owns the console and JSON handlers, level parsing, and the optional JSON
// log file that mirrors console output. Context helpers tag lines with the
// extract run ID and the input row being processed, and a no-op logger is
// available for tests and wiring code that cannot fail.
package logging
