// Package store holds the in-memory resource collections for projects,
// tasks, and file metadata.
//
// Collections preserve insertion order and lookups are linear scans. That
// is deliberate: the backend is a single-process prototype whose metadata
// is memory-only and lost on restart, and the observable ordering of list
// responses is part of the API contract.
package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"epichub/internal/models"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrFileNotFound    = errors.New("file not found")

	ErrInvalidProject = errors.New("project name is required")
	ErrInvalidTask    = errors.New("task title is required")
)

// Store owns the three entity collections and their id counters.
// All methods are safe for concurrent use.
type Store struct {
	mu sync.Mutex

	projects []models.Project
	tasks    []models.Task
	files    []models.File

	nextProjectID int
	nextTaskID    int
	nextFileID    int
}

// New returns an empty store with counters starting at 1.
func New() *Store {
	return &Store{nextProjectID: 1, nextTaskID: 1, nextFileID: 1}
}

// CreateProject appends a new project. The name must be non-empty after
// trimming whitespace.
func (s *Store) CreateProject(name string) (models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Project{}, ErrInvalidProject
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	project := models.Project{
		ID:        s.nextProjectID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	s.nextProjectID++
	s.projects = append(s.projects, project)
	return project, nil
}

// Projects returns all projects in creation order.
func (s *Store) Projects() []models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// ProjectExists reports whether a project with the given id exists.
func (s *Store) ProjectExists(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.projectIndex(id) >= 0
}

// TaskFields carries the fields of a task create or patch payload.
// Nil pointers and unset Has flags mean the field was absent (or present
// with the wrong type, which callers treat the same way).
type TaskFields struct {
	Title       *string
	Description *string
	Status      *string

	Assignees    []string
	HasAssignees bool

	DueDate    *string
	HasDueDate bool

	Labels    []string
	HasLabels bool
}

// CreateTask appends a task under an existing project, filling defaults
// for absent fields.
func (s *Store) CreateTask(projectID int, fields TaskFields) (models.Task, error) {
	title := ""
	if fields.Title != nil {
		title = strings.TrimSpace(*fields.Title)
	}
	if title == "" {
		return models.Task{}, ErrInvalidTask
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.projectIndex(projectID) < 0 {
		return models.Task{}, ErrProjectNotFound
	}

	task := models.Task{
		ID:        s.nextTaskID,
		ProjectID: projectID,
		Title:     title,
		Status:    models.DefaultTaskStatus,
		Assignees: []string{},
		Labels:    []string{},
		CreatedAt: time.Now().UTC(),
	}
	s.nextTaskID++

	if fields.Description != nil {
		task.Description = *fields.Description
	}
	if fields.Status != nil {
		task.Status = *fields.Status
	}
	if fields.HasAssignees {
		task.Assignees = nonNil(fields.Assignees)
	}
	if fields.HasDueDate {
		task.DueDate = fields.DueDate
	}
	if fields.HasLabels {
		task.Labels = nonNil(fields.Labels)
	}

	s.tasks = append(s.tasks, task)
	return task, nil
}

// TasksByProject returns a project's tasks in creation order.
func (s *Store) TasksByProject(projectID int) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.projectIndex(projectID) < 0 {
		return nil, ErrProjectNotFound
	}

	out := []models.Task{}
	for _, task := range s.tasks {
		if task.ProjectID == projectID {
			out = append(out, task)
		}
	}
	return out, nil
}

// PatchTask overwrites only the fields set in the payload, leaving every
// other field untouched, and returns the updated task. An empty title is
// ignored rather than applied so a task never loses its title.
func (s *Store) PatchTask(id int, fields TaskFields) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Task{}, ErrTaskNotFound
	}

	task := &s.tasks[idx]
	if fields.Title != nil {
		if title := strings.TrimSpace(*fields.Title); title != "" {
			task.Title = title
		}
	}
	if fields.Description != nil {
		task.Description = *fields.Description
	}
	if fields.Status != nil {
		task.Status = *fields.Status
	}
	if fields.HasAssignees {
		task.Assignees = nonNil(fields.Assignees)
	}
	if fields.HasDueDate {
		task.DueDate = fields.DueDate
	}
	if fields.HasLabels {
		task.Labels = nonNil(fields.Labels)
	}
	return *task, nil
}

// DeleteTask removes a task by id.
func (s *Store) DeleteTask(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return ErrTaskNotFound
}

// CreateFile allocates a file metadata record, invokes write to persist
// the blob under the record's storage name, and appends the record only
// if the write succeeds.
//
// The whole sequence runs inside the store's critical section, so the
// version computed from the current records cannot be duplicated by a
// concurrent upload of the same filename. A failed write still consumes
// the allocated id.
func (s *Store) CreateFile(projectID int, filename, fileType string, write func(f models.File) error) (models.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.projectIndex(projectID) < 0 {
		return models.File{}, ErrProjectNotFound
	}

	version := 1
	for _, f := range s.files {
		if f.ProjectID == projectID && f.Filename == filename {
			version++
		}
	}

	file := models.File{
		ID:         s.nextFileID,
		ProjectID:  projectID,
		Filename:   filename,
		FileType:   fileType,
		Version:    version,
		S3Key:      models.StorageName(s.nextFileID, filename),
		UploadedAt: time.Now().UTC(),
	}
	s.nextFileID++

	if write != nil {
		if err := write(file); err != nil {
			return models.File{}, err
		}
	}

	s.files = append(s.files, file)
	return file, nil
}

// FilesByProject returns a project's file records in upload order.
func (s *Store) FilesByProject(projectID int) ([]models.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.projectIndex(projectID) < 0 {
		return nil, ErrProjectNotFound
	}

	out := []models.File{}
	for _, f := range s.files {
		if f.ProjectID == projectID {
			out = append(out, f)
		}
	}
	return out, nil
}

// File returns a file record by id.
func (s *Store) File(id int) (models.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.files {
		if f.ID == id {
			return f, nil
		}
	}
	return models.File{}, ErrFileNotFound
}

// RemoveFile deletes a file record and returns it so the caller can also
// remove the blob.
func (s *Store) RemoveFile(id int) (models.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.files {
		if s.files[i].ID == id {
			removed := s.files[i]
			s.files = append(s.files[:i], s.files[i+1:]...)
			return removed, nil
		}
	}
	return models.File{}, ErrFileNotFound
}

// projectIndex must be called with s.mu held.
func (s *Store) projectIndex(id int) int {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return i
		}
	}
	return -1
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
