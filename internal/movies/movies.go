package movies

import "strings"

// Output column names, in the order they are written.
const (
	FieldTitle = "Title"
	FieldYear  = "Year"
)

// OutputFields is the fixed output schema.
var OutputFields = []string{FieldTitle, FieldYear}

// Query is one lookup request built from an input row.
type Query struct {
	Title string
	Year  string
}

// Normalize returns the query with surrounding whitespace removed.
func (q Query) Normalize() Query {
	return Query{Title: strings.TrimSpace(q.Title), Year: strings.TrimSpace(q.Year)}
}

// Empty reports whether the title cell is the empty string. Such rows are
// skipped; a whitespace-only title is still looked up.
func (q Query) Empty() bool {
	return q.Title == ""
}

// OutputRow is the Title/Year projection of a lookup result. A field the
// lookup did not return is absent: its Has flag is false and it is written as
// an empty cell.
type OutputRow struct {
	Title    string
	Year     string
	HasTitle bool
	HasYear  bool
}

// Values returns the row cells in OutputFields order.
func (r OutputRow) Values() []string {
	return []string{r.Title, r.Year}
}

// Populated counts the fields present in the row.
func (r OutputRow) Populated() int {
	n := 0
	if r.HasTitle {
		n++
	}
	if r.HasYear {
		n++
	}
	return n
}

// Complete reports whether every output field is present.
func (r OutputRow) Complete() bool {
	return r.Populated() == len(OutputFields)
}
