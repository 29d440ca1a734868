package enrich

// Policy decides how lookup failures affect the run.
type Policy string

const (
	// PolicyBlank writes an empty row for a failed lookup and continues.
	PolicyBlank Policy = "blank"
	// PolicyAbort stops at the first failed lookup.
	PolicyAbort Policy = "abort"
)
