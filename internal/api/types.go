package api

// ErrorResponse is the JSON error wrapper used by every API error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by /health and /api/health.
type HealthResponse struct {
	Status string `json:"status"`
}

// ProjectCreateRequest defines the payload for creating a project.
type ProjectCreateRequest struct {
	Name string `json:"name"`
}

// TaskCreateRequest defines the payload for creating a task. Absent
// fields take server-side defaults.
type TaskCreateRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Assignees   []string `json:"assignees,omitempty"`
	DueDate     *string  `json:"due_date,omitempty"`
	Labels      []string `json:"labels,omitempty"`
}

// TaskUpdateRequest defines the payload for partially updating a task.
// Only set fields are sent, and only sent fields are applied.
type TaskUpdateRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Assignees   []string `json:"assignees,omitempty"`
	DueDate     *string  `json:"due_date,omitempty"`
	Labels      []string `json:"labels,omitempty"`
}

// FileUploadRequest defines the JSON envelope for uploading a file. The
// payload bytes travel base64-encoded.
type FileUploadRequest struct {
	Filename string `json:"filename"`
	FileType string `json:"fileType"`
	Base64   string `json:"base64"`
}
