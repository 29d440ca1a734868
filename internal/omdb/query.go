package omdb

import (
	"net/url"
	"strings"
)

// DefaultBaseURL is the public OMDb endpoint.
const DefaultBaseURL = "http://www.omdbapi.com/"

const (
	plotParam   = "short"
	formatParam = "json"
)

// BuildQueryURL returns <base>?t=<title>&y=<year>&plot=short&r=json.
//
// Title and year are trimmed. The title is query-escaped (spaces become '+');
// the year is inserted verbatim. Parameter order is fixed and y= is emitted
// even when the year is empty. url.Values is not used because Encode sorts
// keys.
func BuildQueryURL(base, title, year string) string {
	var b strings.Builder
	b.Grow(len(base) + len(title)*3 + len(year) + 32)
	b.WriteString(base)
	b.WriteString("?t=")
	b.WriteString(url.QueryEscape(strings.TrimSpace(title)))
	b.WriteString("&y=")
	b.WriteString(strings.TrimSpace(year))
	b.WriteString("&plot=")
	b.WriteString(plotParam)
	b.WriteString("&r=")
	b.WriteString(formatParam)
	return b.String()
}
