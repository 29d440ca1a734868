package omdb

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"movieinfo/internal/movies"
)

// Record is a decoded lookup response. Its schema belongs to the remote
// service; numbers are kept as json.Number so they print exactly as sent.
type Record map[string]any

// Field returns the value stored under key as text. Matching is exact and
// case-sensitive. A JSON null is present with an empty value.
func (r Record) Field(key string) (string, bool) {
	v, ok := r[key]
	if !ok {
		return "", false
	}
	return fieldText(v), true
}

// Found reports whether the service answered with Response "True". Records
// without a Response key are treated as found.
func (r Record) Found() bool {
	resp, ok := r.Field("Response")
	if !ok {
		return true
	}
	return !strings.EqualFold(strings.TrimSpace(resp), "false")
}

// ErrorMessage returns the service-supplied Error text, if any.
func (r Record) ErrorMessage() string {
	msg, _ := r.Field("Error")
	return msg
}

// Project copies Title and Year out of the record. Every other key is dropped;
// a missing key leaves the field absent.
func Project(r Record) movies.OutputRow {
	var row movies.OutputRow
	row.Title, row.HasTitle = r.Field(movies.FieldTitle)
	row.Year, row.HasYear = r.Field(movies.FieldYear)
	return row
}

func fieldText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		encoded, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(encoded)
	}
}
