package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

type Reply struct {
	Status      int
	ContentType string
	Body        string
}

// RecordingServer answers every request with a fixed Reply and keeps a copy of
// what it received.
type RecordingServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
}

func NewRecordingServer(t *testing.T, reply Reply) *RecordingServer {
	t.Helper()

	srv := &RecordingServer{
		Server:   nil,
		mu:       sync.Mutex{},
		requests: nil,
	}

	srv.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)

			return
		}

		srv.mu.Lock()
		srv.requests = append(srv.requests, RecordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		srv.mu.Unlock()

		if reply.ContentType != "" {
			w.Header().Set("Content-Type", reply.ContentType)
		}

		status := reply.Status
		if status == 0 {
			status = http.StatusOK
		}

		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply.Body)
	}))

	t.Cleanup(srv.Close)

	return srv
}

func (s *RecordingServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)

	return out
}

func (s *RecordingServer) LastRequest(t *testing.T) RecordedRequest {
	t.Helper()

	requests := s.Requests()
	require.NotEmpty(t, requests, "server received no requests")

	return requests[len(requests)-1]
}

// ClosedServerURL returns the address of a server that is no longer listening.
func ClosedServerURL(t *testing.T) string {
	t.Helper()

	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	return addr
}
