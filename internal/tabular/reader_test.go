package tabular_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"movieinfo/internal/movies"
	"movieinfo/internal/tabular"
)

func readAll(t *testing.T, r *tabular.Reader) []movies.Query {
	t.Helper()
	var out []movies.Query
	for {
		q, err := r.Next()
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		out = append(out, q)
	}
}

func TestReaderTitleAndYear(t *testing.T) {
	input := "Year,Title,Director\n2013,Frozen,Buck\n,The Matrix,\n1999,,\n"
	r, err := tabular.NewReader(strings.NewReader(input), "")
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	got := readAll(t, r)
	want := []movies.Query{
		{Title: "Frozen", Year: "2013"},
		{Title: "The Matrix", Year: ""},
		{Title: "", Year: "1999"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestReaderWithoutYearColumn(t *testing.T) {
	r, err := tabular.NewReader(strings.NewReader("Title\nUp\n"), "utf-8")
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if r.HasYear() {
		t.Fatal("expected no Year column")
	}
	got := readAll(t, r)
	if len(got) != 1 || got[0].Title != "Up" || got[0].Year != "" {
		t.Fatalf("unexpected rows %+v", got)
	}
}

func TestReaderStripsBOM(t *testing.T) {
	r, err := tabular.NewReader(strings.NewReader("\uFEFFTitle,Year\nFrozen,2013\n"), "")
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if h := r.Header(); h[0] != "Title" {
		t.Fatalf("expected BOM stripped, got %q", h[0])
	}
}

func TestReaderMissingTitleColumn(t *testing.T) {
	_, err := tabular.NewReader(strings.NewReader("Name,Year\nFrozen,2013\n"), "")
	if !errors.Is(err, tabular.ErrMissingTitleColumn) {
		t.Fatalf("expected ErrMissingTitleColumn, got %v", err)
	}
}

func TestReaderEmptyInput(t *testing.T) {
	if _, err := tabular.NewReader(strings.NewReader(""), ""); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestReaderShortRows(t *testing.T) {
	r, err := tabular.NewReader(strings.NewReader("Extra,Title,Year\nonly\n"), "")
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	got := readAll(t, r)
	if len(got) != 1 || got[0] != (movies.Query{}) {
		t.Fatalf("expected empty query for short row, got %+v", got)
	}
}

func TestReaderWindows1252(t *testing.T) {
	input := []byte("Title,Year\nAm\xe9lie,2001\n")
	r, err := tabular.NewReader(strings.NewReader(string(input)), "windows-1252")
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	got := readAll(t, r)
	if len(got) != 1 || got[0].Title != "Amélie" {
		t.Fatalf("unexpected rows %+v", got)
	}
}

func TestReaderUTF16(t *testing.T) {
	// little-endian with BOM: "Title\nUp\n"
	input := []byte{0xFF, 0xFE, 'T', 0, 'i', 0, 't', 0, 'l', 0, 'e', 0, '\n', 0, 'U', 0, 'p', 0, '\n', 0}
	r, err := tabular.NewReader(strings.NewReader(string(input)), "utf-16")
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	got := readAll(t, r)
	if len(got) != 1 || got[0].Title != "Up" {
		t.Fatalf("unexpected rows %+v", got)
	}
}

func TestReaderUnknownEncoding(t *testing.T) {
	if _, err := tabular.NewReader(strings.NewReader("Title\n"), "ebcdic"); err == nil {
		t.Fatal("expected error for unknown encoding")
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := tabular.Open(filepath.Join(t.TempDir(), "missing.csv"), ""); err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestOpenAndClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.csv")
	if err := os.WriteFile(path, []byte("Title,Year\r\nFrozen,2013\r\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	r, err := tabular.Open(path, "")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	got := readAll(t, r)
	if len(got) != 1 || got[0].Year != "2013" {
		t.Fatalf("unexpected rows %+v", got)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
