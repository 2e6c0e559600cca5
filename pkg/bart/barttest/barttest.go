// Package barttest serves recorded BART API responses for tests.
package barttest

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/travigo/bart/pkg/bart"
)

// Server answers requests with the fixture file registered for their cmd
// parameter. Keys may add query parameters, "stninfo?orig=mcar", and the key
// matching the most parameters wins.
type Server struct {
	*httptest.Server

	fixtures map[string]string

	mu       sync.Mutex
	requests []url.Values
}

func NewServer(t testing.TB, fixtures map[string]string) *Server {
	t.Helper()

	s := &Server{fixtures: fixtures}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)

	return s
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	s.mu.Lock()
	s.requests = append(s.requests, query)
	s.mu.Unlock()

	path, ok := s.fixture(query)
	if !ok {
		http.NotFound(w, r)
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *Server) fixture(query url.Values) (string, bool) {
	cmd := query.Get("cmd")

	best, bestParams := "", -1
	for key, path := range s.fixtures {
		name, rawParams, _ := strings.Cut(key, "?")
		if name != cmd {
			continue
		}

		params, err := url.ParseQuery(rawParams)
		if err != nil || !matches(query, params) {
			continue
		}

		if len(params) > bestParams {
			best, bestParams = path, len(params)
		}
	}

	return best, bestParams >= 0
}

// matches reports whether query carries every parameter in params, values
// compared without case.
func matches(query url.Values, params url.Values) bool {
	for name := range params {
		if !strings.EqualFold(query.Get(name), params.Get(name)) {
			return false
		}
	}

	return true
}

// Client returns a client pointed at the server.
func (s *Server) Client(options ...bart.Option) *bart.Client {
	return bart.NewClient(append([]bart.Option{bart.WithBaseURL(s.URL)}, options...)...)
}

// Requests returns the query of every request received so far.
func (s *Server) Requests() []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]url.Values(nil), s.requests...)
}

// LastRequest returns the query of the latest request, nil if there was none.
func (s *Server) LastRequest() url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.requests) == 0 {
		return nil
	}
	return s.requests[len(s.requests)-1]
}
