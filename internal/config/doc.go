// Package config loads, normalizes, and validates movieinfo configuration data.
//
// It supplies repository defaults (the same data/ file locations the tool has
// always used), expands tilde paths, reads TOML files, and honours the
// MOVIEINFO_OMDB_BASE_URL environment fallback. Always obtain settings through
// this package so the CLI and pipeline see canonical encodings, failure
// policies, and clear validation errors.
package config
