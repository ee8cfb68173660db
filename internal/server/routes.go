package server

import (
	"net/http"
	"strings"
)

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	// Health check.
	mux.HandleFunc("GET /api/health", s.handleHealth)

	// Projects collection.
	mux.HandleFunc("GET /api/projects", s.handleListProjects)
	mux.HandleFunc("POST /api/projects", s.handleCreateProject)

	// Project sub-resources.
	mux.HandleFunc("GET /api/projects/{id}/files", s.handleListProjectFiles)
	mux.HandleFunc("POST /api/projects/{id}/files", s.handleUploadFile)
	mux.HandleFunc("GET /api/projects/{id}/tasks", s.handleListProjectTasks)
	mux.HandleFunc("POST /api/projects/{id}/tasks", s.handleCreateTask)

	// Single task.
	mux.HandleFunc("PATCH /api/tasks/{id}", s.handleUpdateTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", s.handleDeleteTask)

	// Single file.
	mux.HandleFunc("GET /api/files/{id}", s.handleDownloadFile)
	mux.HandleFunc("DELETE /api/files/{id}", s.handleDeleteFile)

	// CORS preflight for the whole API subtree, and the unmatched-route
	// fallback. The method-less pattern also absorbs wrong-method
	// requests to registered paths, so they 404 instead of 405.
	mux.HandleFunc("OPTIONS /api/", s.handlePreflight)
	mux.HandleFunc("/api/", s.handleAPINotFound)

	apiHandler := s.withCORS(mux)

	return s.withRequestLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			apiHandler.ServeHTTP(w, r)
			return
		}

		// Non-API health path, kept for legacy probes.
		if r.URL.Path == "/health" {
			s.handleHealth(w, r)
			return
		}

		if r.Method == http.MethodGet {
			s.serveStatic(w, r)
			return
		}

		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}))
}

func (s *Server) handlePreflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAPINotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, http.StatusNotFound, msgNotFound)
}

// withCORS sets permissive CORS headers on every API response, errors
// and preflight included.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET,POST,PATCH,DELETE,OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		next.ServeHTTP(w, r)
	})
}
