// Package services defines shared utilities consumed by the lookup client and
// the enrichment pipeline.
//
// Key responsibilities:
//   - Context helpers that stamp the run ID and input row number for logging.
//   - Structured error markers plus the Wrap helper, and FailureReason which
//     turns a failed lookup into the short reason recorded for the row.
package services
