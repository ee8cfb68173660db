package models

import "time"

// DefaultTaskStatus is assigned when a task is created without a status.
// Statuses are free-form strings; the web client treats them as board columns.
const DefaultTaskStatus = "Backlog"

// Task is a unit of work belonging to a project.
type Task struct {
	ID          int       `json:"id"`
	ProjectID   int       `json:"project_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Assignees   []string  `json:"assignees"`
	DueDate     *string   `json:"due_date"`
	Labels      []string  `json:"labels"`
	CreatedAt   time.Time `json:"created_at"`
}
