package omdb

import (
	"strings"
	"testing"
)

func TestProjectDropsUnknownKeys(t *testing.T) {
	rec, err := decodeRecord(strings.NewReader(`{"Title":"Frozen","Year":"2013","Genre":"Animation","Response":"True"}`))
	if err != nil {
		t.Fatalf("decodeRecord: %v", err)
	}
	row := Project(rec)
	if !row.Complete() || row.Title != "Frozen" || row.Year != "2013" {
		t.Fatalf("unexpected row: %+v", row)
	}
	if got := row.Values(); len(got) != 2 {
		t.Fatalf("expected 2 cells, got %v", got)
	}
}

func TestProjectMissingYear(t *testing.T) {
	rec, err := decodeRecord(strings.NewReader(`{"Title":"Frozen"}`))
	if err != nil {
		t.Fatalf("decodeRecord: %v", err)
	}
	row := Project(rec)
	if !row.HasTitle || row.HasYear {
		t.Fatalf("unexpected presence flags: %+v", row)
	}
	if row.Year != "" {
		t.Fatalf("expected empty year, got %q", row.Year)
	}
}

func TestProjectIsCaseSensitive(t *testing.T) {
	row := Project(Record{"title": "lower", "YEAR": "1999"})
	if row.Populated() != 0 {
		t.Fatalf("expected no fields, got %+v", row)
	}
}

func TestProjectNonStringValues(t *testing.T) {
	rec, err := decodeRecord(strings.NewReader(`{"Title":null,"Year":2013}`))
	if err != nil {
		t.Fatalf("decodeRecord: %v", err)
	}
	row := Project(rec)
	if !row.HasTitle || row.Title != "" {
		t.Fatalf("null title should be present and empty: %+v", row)
	}
	if row.Year != "2013" {
		t.Fatalf("expected numeric year preserved, got %q", row.Year)
	}
}

func TestRecordNotFound(t *testing.T) {
	rec := Record{"Response": "False", "Error": "Movie not found!"}
	if rec.Found() {
		t.Fatal("expected Found to be false")
	}
	if rec.ErrorMessage() != "Movie not found!" {
		t.Fatalf("unexpected error message %q", rec.ErrorMessage())
	}
	if Project(rec).Populated() != 0 {
		t.Fatal("expected empty projection")
	}
}

func TestDecodeRecordRejectsNonObject(t *testing.T) {
	bodies := []string{
		"",
		"null",
		"[]",
		"not json",
		`"text"`,
		`{"Title":"Frozen","Year":"2013"} <html>oops</html>`,
		`{"Title":"Frozen"}{"Year":"2013"}`,
		"{\"Title\":\"Fro\xffzen\"}",
	}
	for _, body := range bodies {
		if _, err := decodeRecord(strings.NewReader(body)); err == nil {
			t.Fatalf("expected error for body %q", body)
		}
	}
}

func TestDecodeRecordAllowsTrailingWhitespace(t *testing.T) {
	rec, err := decodeRecord(strings.NewReader("{\"Title\":\"Frozen\"}\r\n  \n"))
	if err != nil {
		t.Fatalf("decodeRecord: %v", err)
	}
	if title, _ := rec.Field("Title"); title != "Frozen" {
		t.Fatalf("unexpected title %q", title)
	}
}
