// Package server implements the epichub HTTP API: route dispatch,
// request validation, and the JSON/binary response surface over the
// in-memory resource store and the local blob store.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"epichub/internal/blobstore"
	"epichub/internal/store"
)

const (
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 60 * time.Second
)

// Options tune request handling limits and the static client location.
type Options struct {
	// ClientDir is the static web client source directory; its build/
	// subdirectory is preferred when present.
	ClientDir string
	// MaxBodyBytes caps JSON request bodies; bodies over the cap are
	// rejected with 413.
	MaxBodyBytes int64
	// UploadMaxBodyBytes caps file upload envelopes, which carry
	// base64-encoded payloads and need more headroom.
	UploadMaxBodyBytes int64
}

// Server wraps HTTP handlers for the epichub API.
type Server struct {
	addr   string
	store  *store.Store
	blobs  blobstore.Store
	opts   Options
	logger *slog.Logger
}

// New creates a new server instance.
func New(addr string, st *store.Store, blobs blobstore.Store, opts Options, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 1 << 20
	}
	if opts.UploadMaxBodyBytes <= 0 {
		opts.UploadMaxBodyBytes = 32 << 20
	}
	return &Server{
		addr:   addr,
		store:  st,
		blobs:  blobs,
		opts:   opts,
		logger: logger,
	}
}

// ListenAndServe starts the HTTP server.
//
// Only header-read and idle timeouts are set: a slow body read or a slow
// blob stream blocks just its own request, never the process.
func (s *Server) ListenAndServe() error {
	s.log().Info("starting server", "addr", s.addr)
	server := &http.Server{
		Addr:              s.addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}
	return server.ListenAndServe()
}

func (s *Server) log() *slog.Logger {
	if s != nil && s.logger != nil {
		return s.logger
	}
	return slog.Default()
}
