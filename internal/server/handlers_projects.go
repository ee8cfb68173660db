package server

import "net/http"

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.Projects())
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	body, ok := s.decodeBody(w, r, s.opts.MaxBodyBytes, msgInvalidProject)
	if !ok {
		return
	}

	name, ok := stringField(body, "name")
	if !ok {
		s.writeError(w, r, http.StatusBadRequest, msgInvalidProject)
		return
	}

	project, err := s.store.CreateProject(name)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, project)
}
