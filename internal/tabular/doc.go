// Package tabular reads movie title lists from CSV and writes the enriched
// Title/Year result file.
//
// Reader resolves the Title and Year columns by header name, strips a
// leading byte order mark, and optionally decodes legacy encodings through
// golang.org/x/text. Writer emits the fixed Title,Year header and flushes
// every record so partially completed runs leave readable output.
package tabular
