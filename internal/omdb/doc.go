// Package omdb provides the minimal OMDb API client used to enrich movie
// title lists.
//
// BuildQueryURL produces the fixed-shape title/year query URL. Client performs
// one GET per query and decodes the body into an untyped Record, whose schema
// is owned by the remote service. Project selects the Title and Year fields
// from a Record into the fixed output row. Transport failures, non-2xx
// responses, and malformed bodies are returned as errors tagged with the
// services markers so callers can classify them per row.
package omdb
