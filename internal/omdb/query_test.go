package omdb_test

import (
	"net/url"
	"strings"
	"testing"

	"movieinfo/internal/omdb"
)

func TestBuildQueryURLDefaultBase(t *testing.T) {
	got := omdb.BuildQueryURL(omdb.DefaultBaseURL, "Frozen", "2013")
	want := "http://www.omdbapi.com/?t=Frozen&y=2013&plot=short&r=json"
	if got != want {
		t.Fatalf("BuildQueryURL = %q, want %q", got, want)
	}
}

func TestBuildQueryURLEncoding(t *testing.T) {
	tests := []struct {
		name  string
		title string
		year  string
		want  string
	}{
		{"spaces", "The Matrix", "", "http://www.omdbapi.com/?t=The+Matrix&y=&plot=short&r=json"},
		{"trimmed", "  Frozen ", " 2013 ", "http://www.omdbapi.com/?t=Frozen&y=2013&plot=short&r=json"},
		{"reserved", "Tom & Jerry", "1940", "http://www.omdbapi.com/?t=Tom+%26+Jerry&y=1940&plot=short&r=json"},
		{"unicode", "Amélie", "2001", "http://www.omdbapi.com/?t=Am%C3%A9lie&y=2001&plot=short&r=json"},
		{"year verbatim", "Up", "2009 a", "http://www.omdbapi.com/?t=Up&y=2009 a&plot=short&r=json"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := omdb.BuildQueryURL(omdb.DefaultBaseURL, tc.title, tc.year); got != tc.want {
				t.Fatalf("BuildQueryURL = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBuildQueryURLTitleRoundTrip(t *testing.T) {
	titles := []string{
		"Frozen",
		"The Lord of the Rings: The Return of the King",
		"  What's Up, Doc?  ",
		"100% Arabica",
		"a+b=c/d#e",
		"Crouching Tiger, Hidden Dragon 臥虎藏龍",
	}
	for _, title := range titles {
		raw := omdb.BuildQueryURL(omdb.DefaultBaseURL, title, "1999")
		parsed, err := url.Parse(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got := parsed.Query().Get("t"); got != strings.TrimSpace(title) {
			t.Fatalf("round trip of %q gave %q", title, got)
		}
		if !strings.HasSuffix(raw, "&y=1999&plot=short&r=json") {
			t.Fatalf("unexpected parameter tail in %q", raw)
		}
	}
}
