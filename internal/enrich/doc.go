// Package enrich runs the sequential title-to-metadata pipeline.
//
// Pipeline reads queries from a RowSource, skips rows without a title, looks
// each remaining title up once, projects the response onto the Title/Year
// output row, and hands it to a RowSink in input order. Every input row yields
// an Outcome; lookup failures are recorded per row and either produce a blank
// output row or stop the run, depending on the configured Policy.
package enrich
