package enrich

import (
	"fmt"

	"movieinfo/internal/movies"
)

// Status classifies what happened to one input row.
type Status string

const (
	StatusEnriched Status = "enriched"
	StatusPartial  Status = "partial"
	StatusEmpty    Status = "empty"
	StatusFailed   Status = "failed"
	StatusSkipped  Status = "skipped"
)

// Outcome describes the processing result of a single input row.
type Outcome struct {
	Row    int
	Query  movies.Query
	Status Status
	Output movies.OutputRow
	// Reason is set for failed rows; see services.FailureReason.
	Reason string
	// Remote carries the service Error text for well-formed not-found replies.
	Remote string
	Err    error
}

// Written reports whether the row produced an output record.
func (o Outcome) Written() bool {
	return o.Status != StatusSkipped
}

// RowError ties a lookup failure to its input row.
type RowError struct {
	Row   int
	Title string
	Stage string
	Err   error
}

func (e *RowError) Error() string {
	if e == nil {
		return "row error"
	}
	return fmt.Sprintf("row %d (%q) %s: %v", e.Row, e.Title, e.Stage, e.Err)
}

func (e *RowError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func statusFor(row movies.OutputRow) Status {
	switch {
	case row.Complete():
		return StatusEnriched
	case row.Populated() > 0:
		return StatusPartial
	default:
		return StatusEmpty
	}
}
