package server

import (
	"net/http"

	"epichub/internal/store"
)

// taskFieldsFromBody pulls the recognized task fields out of a payload.
// A field present with the wrong type is silently dropped, the same as if
// it were absent; that leniency is part of the API contract.
func taskFieldsFromBody(body map[string]any) store.TaskFields {
	var fields store.TaskFields

	if title, ok := stringField(body, "title"); ok {
		fields.Title = &title
	}
	if description, ok := stringField(body, "description"); ok {
		fields.Description = &description
	}
	if status, ok := stringField(body, "status"); ok {
		fields.Status = &status
	}
	if assignees, ok := stringSliceField(body, "assignees"); ok {
		fields.Assignees = assignees
		fields.HasAssignees = true
	}
	if dueDate, ok := nullableStringField(body, "due_date"); ok {
		fields.DueDate = dueDate
		fields.HasDueDate = true
	}
	if labels, ok := stringSliceField(body, "labels"); ok {
		fields.Labels = labels
		fields.HasLabels = true
	}

	return fields
}

func (s *Server) handleListProjectTasks(w http.ResponseWriter, r *http.Request) {
	projectID, ok := s.pathID(w, r)
	if !ok {
		return
	}

	tasks, err := s.store.TasksByProject(projectID)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	projectID, ok := s.pathID(w, r)
	if !ok {
		return
	}
	if !s.store.ProjectExists(projectID) {
		s.writeError(w, r, http.StatusNotFound, msgProjectMissing)
		return
	}

	body, ok := s.decodeBody(w, r, s.opts.MaxBodyBytes, msgInvalidTask)
	if !ok {
		return
	}

	task, err := s.store.CreateTask(projectID, taskFieldsFromBody(body))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, task)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	body, ok := s.decodeBody(w, r, s.opts.MaxBodyBytes, msgInvalidTask)
	if !ok {
		return
	}

	task, err := s.store.PatchTask(id, taskFieldsFromBody(body))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	if err := s.store.DeleteTask(id); err != nil {
		s.writeStoreError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
