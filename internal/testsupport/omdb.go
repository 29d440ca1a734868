package testsupport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Movie is a canned lookup result served by OMDbServer.
type Movie struct {
	Title string
	Year  string
	// Status, when non-zero, is returned instead of a JSON body.
	Status int
	// Raw, when set, is written verbatim as the body.
	Raw string
}

// OMDbServer is an httptest server that answers title lookups from a table.
// Titles not in the table get the service's not-found reply.
type OMDbServer struct {
	*httptest.Server

	mu      sync.Mutex
	movies  map[string]Movie
	queries []string
}

// NewOMDbServer starts a fake lookup server closed at test cleanup.
func NewOMDbServer(t testing.TB, movies map[string]Movie) *OMDbServer {
	t.Helper()

	srv := &OMDbServer{movies: movies}
	srv.Server = httptest.NewServer(http.HandlerFunc(srv.handle))
	t.Cleanup(srv.Close)
	return srv
}

// BaseURL returns the server root with a trailing slash.
func (s *OMDbServer) BaseURL() string {
	return s.URL + "/"
}

// Queries returns the raw query strings received, in order.
func (s *OMDbServer) Queries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

func (s *OMDbServer) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.queries = append(s.queries, r.URL.RawQuery)
	movie, ok := s.movies[r.URL.Query().Get("t")]
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case !ok:
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
	case movie.Status != 0:
		w.WriteHeader(movie.Status)
	case movie.Raw != "":
		_, _ = w.Write([]byte(movie.Raw))
	default:
		_ = json.NewEncoder(w).Encode(map[string]string{
			"Title":    movie.Title,
			"Year":     movie.Year,
			"Plot":     "Short plot.",
			"Response": "True",
		})
	}
}
