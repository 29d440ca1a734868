package preflight

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"movieinfo/internal/config"
)

func writeInput(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.csv")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckInputFile_OK(t *testing.T) {
	result := CheckInputFile("input", writeInput(t, "Title,Year\nFrozen,2013\n"), "")
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
}

func TestCheckInputFile_NoYear(t *testing.T) {
	result := CheckInputFile("input", writeInput(t, "Title\nFrozen\n"), "")
	if !result.Passed || !strings.Contains(result.Detail, "no Year column") {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestCheckInputFile_MissingTitle(t *testing.T) {
	result := CheckInputFile("input", writeInput(t, "Name\nFrozen\n"), "")
	if result.Passed {
		t.Fatal("expected failure for header without Title")
	}
}

func TestCheckInputFile_NotExist(t *testing.T) {
	result := CheckInputFile("input", filepath.Join(t.TempDir(), "nope.csv"), "")
	if result.Passed || result.Detail == "" {
		t.Fatalf("expected failure with detail, got %+v", result)
	}
}

func TestCheckInputFile_Directory(t *testing.T) {
	if result := CheckInputFile("input", t.TempDir(), ""); result.Passed {
		t.Fatal("expected failure for directory")
	}
}

func TestCheckOutputDirectory_Existing(t *testing.T) {
	result := CheckOutputDirectory("output", filepath.Join(t.TempDir(), "out.csv"))
	if !result.Passed || !strings.Contains(result.Detail, "write ok") {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestCheckOutputDirectory_WillBeCreated(t *testing.T) {
	result := CheckOutputDirectory("output", filepath.Join(t.TempDir(), "a", "b", "out.csv"))
	if !result.Passed || !strings.Contains(result.Detail, "will be created") {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestCheckOutputDirectory_FileInPath(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckOutputDirectory("output", filepath.Join(blocker, "out.csv"))
	if result.Passed {
		t.Fatal("expected failure when a file blocks the directory")
	}
}

func testConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.OMDb.BaseURL = baseURL
	cfg.OMDb.TimeoutSeconds = 2
	cfg.Paths.InputFile = writeInput(t, "Title,Year\nFrozen,2013\n")
	cfg.Paths.OutputFile = filepath.Join(t.TempDir(), "out", "result.csv")
	return &cfg
}

func TestCheckOMDb_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Title":"Frozen","Year":"2013","Response":"True"}`))
	}))
	defer srv.Close()

	result := CheckOMDb(context.Background(), testConfig(t, srv.URL+"/"))
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
}

func TestCheckOMDb_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"Response":"False","Error":"No API key provided."}`))
	}))
	defer srv.Close()

	result := CheckOMDb(context.Background(), testConfig(t, srv.URL+"/"))
	if result.Passed {
		t.Fatal("expected failure for 401")
	}
	if !strings.Contains(result.Detail, "HTTP 401") {
		t.Fatalf("expected status in detail, got %q", result.Detail)
	}
}

func TestRunAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
	}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL+"/")
	cfg.Paths.LogDir = filepath.Join(t.TempDir(), "logs")
	results := RunAll(context.Background(), cfg)
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	if !AllPassed(results) {
		t.Fatalf("expected all checks to pass: %+v", results)
	}
	if RunAll(context.Background(), nil) != nil {
		t.Fatal("expected nil results for nil config")
	}
}
