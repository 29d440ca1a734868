package enrich

import (
	"sort"
	"time"
)

// Summary aggregates a pipeline run.
type Summary struct {
	RunID    string         `json:"run_id,omitempty"`
	Input    string         `json:"input,omitempty"`
	Output   string         `json:"output,omitempty"`
	Read     int            `json:"rows_read"`
	Skipped  int            `json:"rows_skipped"`
	Written  int            `json:"rows_written"`
	Enriched int            `json:"enriched"`
	Partial  int            `json:"partial"`
	Empty    int            `json:"empty"`
	Failed   int            `json:"failed"`
	Reasons  map[string]int `json:"failure_reasons,omitempty"`
	Aborted  bool           `json:"aborted,omitempty"`
	Duration time.Duration  `json:"duration_ns"`
}

func (s *Summary) record(o Outcome) {
	switch o.Status {
	case StatusSkipped:
		s.Skipped++
		return
	case StatusEnriched:
		s.Enriched++
	case StatusPartial:
		s.Partial++
	case StatusEmpty:
		s.Empty++
	case StatusFailed:
		s.Failed++
		if s.Reasons == nil {
			s.Reasons = make(map[string]int)
		}
		s.Reasons[o.Reason]++
	}
}

// HasFailures reports whether any lookup failed.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// ReasonKeys returns failure reasons in sorted order.
func (s Summary) ReasonKeys() []string {
	keys := make([]string, 0, len(s.Reasons))
	for k := range s.Reasons {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
