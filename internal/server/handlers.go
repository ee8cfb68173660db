package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"epichub/internal/api"
	"epichub/internal/store"
)

// Canonical error messages; the web client matches on these strings.
const (
	msgInvalidProject = "Invalid project data"
	msgInvalidTask    = "Invalid task data"
	msgInvalidFile    = "Invalid file data"
	msgProjectMissing = "Project not found"
	msgTaskMissing    = "Task not found"
	msgFileMissing    = "File not found"
	msgBlobMissing    = "File missing on disk"
	msgSaveFailed     = "Failed to save file"
	msgNotFound       = "Not Found"
	msgBodyTooLarge   = "Request body too large"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log().Error("write json response", "status", status, "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	fields := []any{"status", status, "error", message}
	if r != nil {
		fields = append(fields, "method", r.Method, "path", r.URL.Path, "remote_addr", r.RemoteAddr)
	}
	if status >= 500 {
		s.log().Error("request error", fields...)
	} else {
		s.log().Debug("request rejected", fields...)
	}

	s.writeJSON(w, status, api.ErrorResponse{Error: message})
}

// writeStoreError maps store sentinel errors onto the API error surface.
func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrProjectNotFound):
		s.writeError(w, r, http.StatusNotFound, msgProjectMissing)
	case errors.Is(err, store.ErrTaskNotFound):
		s.writeError(w, r, http.StatusNotFound, msgTaskMissing)
	case errors.Is(err, store.ErrFileNotFound):
		s.writeError(w, r, http.StatusNotFound, msgFileMissing)
	case errors.Is(err, store.ErrInvalidProject):
		s.writeError(w, r, http.StatusBadRequest, msgInvalidProject)
	case errors.Is(err, store.ErrInvalidTask):
		s.writeError(w, r, http.StatusBadRequest, msgInvalidTask)
	default:
		s.log().Error("request error", "error", err, "method", r.Method, "path", r.URL.Path)
		s.writeJSON(w, http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
	}
}

// decodeBody accumulates a JSON request body up to maxBytes and parses it
// into a generic object. An empty body decodes as {}. On failure it
// writes the error response and returns false: 413 when the cap is hit,
// otherwise 400 with the supplied validation message.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, maxBytes int64, invalidMsg string) (map[string]any, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			s.writeError(w, r, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
			return nil, false
		}
		s.writeError(w, r, http.StatusBadRequest, invalidMsg)
		return nil, false
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, true
	}

	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		s.writeError(w, r, http.StatusBadRequest, invalidMsg)
		return nil, false
	}
	return body, true
}

// pathID extracts the {id} path segment, which must be decimal digits. A
// non-numeric segment is treated exactly like an unmatched route.
func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.PathValue("id")
	if raw == "" {
		s.writeError(w, r, http.StatusNotFound, msgNotFound)
		return 0, false
	}
	for _, ch := range raw {
		if ch < '0' || ch > '9' {
			s.writeError(w, r, http.StatusNotFound, msgNotFound)
			return 0, false
		}
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		s.writeError(w, r, http.StatusNotFound, msgNotFound)
		return 0, false
	}
	return id, true
}

// stringField returns a body field when present with a string value.
func stringField(body map[string]any, key string) (string, bool) {
	raw, ok := body[key]
	if !ok {
		return "", false
	}
	value, ok := raw.(string)
	return value, ok
}

// stringSliceField returns a body field when present as an array of
// strings. Arrays holding other element types count as wrong-typed.
func stringSliceField(body map[string]any, key string) ([]string, bool) {
	raw, ok := body[key]
	if !ok {
		return nil, false
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		value, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, value)
	}
	return out, true
}

// nullableStringField returns a body field when present as a string or
// an explicit null. The returned pointer is nil for null.
func nullableStringField(body map[string]any, key string) (*string, bool) {
	raw, ok := body[key]
	if !ok {
		return nil, false
	}
	if raw == nil {
		return nil, true
	}
	value, ok := raw.(string)
	if !ok {
		return nil, false
	}
	return &value, true
}
