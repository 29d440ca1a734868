// Package movies holds the small value types shared by the CSV reader, the
// OMDb client, and the enrichment pipeline: the per-row lookup Query and the
// fixed Title/Year OutputRow.
package movies
