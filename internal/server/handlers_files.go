package server

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"path"
	"strconv"
	"strings"

	"epichub/internal/models"
	"epichub/internal/store"
)

func (s *Server) handleListProjectFiles(w http.ResponseWriter, r *http.Request) {
	projectID, ok := s.pathID(w, r)
	if !ok {
		return
	}

	files, err := s.store.FilesByProject(projectID)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, files)
}

func (s *Server) handleUploadFile(w http.ResponseWriter, r *http.Request) {
	projectID, ok := s.pathID(w, r)
	if !ok {
		return
	}
	if !s.store.ProjectExists(projectID) {
		s.writeError(w, r, http.StatusNotFound, msgProjectMissing)
		return
	}

	body, ok := s.decodeBody(w, r, s.opts.UploadMaxBodyBytes, msgInvalidFile)
	if !ok {
		return
	}

	filename, ok := stringField(body, "filename")
	if !ok {
		s.writeError(w, r, http.StatusBadRequest, msgInvalidFile)
		return
	}
	fileType, ok := stringField(body, "fileType")
	if !ok {
		s.writeError(w, r, http.StatusBadRequest, msgInvalidFile)
		return
	}
	encoded, ok := stringField(body, "base64")
	if !ok {
		s.writeError(w, r, http.StatusBadRequest, msgInvalidFile)
		return
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, msgInvalidFile)
		return
	}

	file, err := s.store.CreateFile(projectID, filename, fileType, func(f models.File) error {
		return s.blobs.Write(f.S3Key, data)
	})
	if err != nil {
		if errors.Is(err, store.ErrProjectNotFound) {
			s.writeError(w, r, http.StatusNotFound, msgProjectMissing)
			return
		}
		s.log().Error("write blob", "project_id", projectID, "filename", filename, "error", err)
		s.writeError(w, r, http.StatusInternalServerError, msgSaveFailed)
		return
	}

	s.writeJSON(w, http.StatusCreated, file)
}

func (s *Server) handleDownloadFile(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	file, err := s.store.File(id)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}

	// A metadata record whose blob vanished is not-found, not a server
	// error.
	blob, size, err := s.blobs.Open(file.S3Key)
	if err != nil {
		s.writeError(w, r, http.StatusNotFound, msgBlobMissing)
		return
	}
	defer blob.Close()

	ext := strings.TrimPrefix(path.Ext(file.Filename), ".")
	w.Header().Set("Content-Type", mimeTypeByExt(ext))
	w.Header().Set("Content-Length", strconv.FormatInt(size, 10))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, blob); err != nil {
		s.log().Error("stream blob", "file_id", id, "error", err)
	}
}

func (s *Server) handleDeleteFile(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	file, err := s.store.RemoveFile(id)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}

	// Blob removal is best-effort; the metadata record is already gone.
	if err := s.blobs.Delete(file.S3Key); err != nil {
		s.log().Warn("delete blob", "file_id", id, "storage_name", file.S3Key, "error", err)
	}

	w.WriteHeader(http.StatusNoContent)
}
