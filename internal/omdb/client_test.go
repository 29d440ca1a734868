package omdb_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"movieinfo/internal/movies"
	"movieinfo/internal/omdb"
	"movieinfo/internal/services"
)

func TestNewRejectsRelativeBase(t *testing.T) {
	if _, err := omdb.New("omdbapi.com/"); err == nil {
		t.Fatal("expected error for base url without scheme")
	}
}

func TestNewDefaultsBase(t *testing.T) {
	client, err := omdb.New("")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if client.BaseURL() != omdb.DefaultBaseURL {
		t.Fatalf("unexpected base %q", client.BaseURL())
	}
}

func TestLookupSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("t") != "The Matrix" || q.Get("y") != "1999" || q.Get("plot") != "short" || q.Get("r") != "json" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		if ua := r.Header.Get("User-Agent"); ua != "movieinfo/test" {
			t.Errorf("unexpected user agent %q", ua)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Title":"The Matrix","Year":"1999","Genre":"Action","Response":"True"}`))
	}))
	t.Cleanup(server.Close)

	client, err := omdb.New(server.URL+"/", omdb.WithUserAgent("movieinfo/test"))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	rec, err := client.Lookup(context.Background(), movies.Query{Title: " The Matrix ", Year: "1999"})
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	row := omdb.Project(rec)
	if row.Title != "The Matrix" || row.Year != "1999" {
		t.Fatalf("unexpected row: %+v", row)
	}
}

func TestLookupHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	client, err := omdb.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	_, err = client.Lookup(context.Background(), movies.Query{Title: "fail"})
	if err == nil {
		t.Fatal("expected error when OMDb returns non-200")
	}
	var statusErr *omdb.HTTPStatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected HTTPStatusError, got %v", err)
	}
	if services.FailureReason(err) != services.ReasonHTTPStatus {
		t.Fatalf("unexpected reason %q", services.FailureReason(err))
	}
}

func TestLookupMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	}))
	t.Cleanup(server.Close)

	client, err := omdb.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	_, err = client.Lookup(context.Background(), movies.Query{Title: "Frozen"})
	var decodeErr *omdb.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if !errors.Is(err, services.ErrInvalidResponse) {
		t.Fatalf("expected invalid response marker, got %v", err)
	}
}

func TestLookupTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	client, err := omdb.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = client.Lookup(ctx, movies.Query{Title: "slow"})
	if !errors.Is(err, services.ErrTimeout) {
		t.Fatalf("expected timeout marker, got %v", err)
	}
}

func TestLookupConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	base := server.URL
	server.Close()

	client, err := omdb.New(base)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	_, err = client.Lookup(context.Background(), movies.Query{Title: "Frozen"})
	if services.FailureReason(err) != services.ReasonNetwork {
		t.Fatalf("expected network failure, got %v", err)
	}
}

func TestLookupTrailingDataIsInvalid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Title":"Frozen","Year":"2013"} <html>oops</html>`))
	}))
	t.Cleanup(server.Close)

	client, err := omdb.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	rec, err := client.Lookup(context.Background(), movies.Query{Title: "Frozen"})
	if rec != nil {
		t.Fatalf("expected no record, got %v", rec)
	}
	if services.FailureReason(err) != services.ReasonInvalidResponse {
		t.Fatalf("expected invalid response, got %v", err)
	}
}
