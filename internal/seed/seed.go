// Package seed loads development fixtures into the in-memory store.
// Because metadata does not survive a restart, a seed manifest is the
// quickest way to get a populated board during development.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"epichub/internal/store"
)

// Manifest is the root of a seed file.
type Manifest struct {
	Projects []Project `yaml:"projects"`
}

// Project seeds one project and its tasks.
type Project struct {
	Name  string `yaml:"name"`
	Tasks []Task `yaml:"tasks"`
}

// Task seeds one task. Zero-value fields fall back to the store's
// creation defaults.
type Task struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Status      string   `yaml:"status"`
	Assignees   []string `yaml:"assignees"`
	DueDate     string   `yaml:"due_date"`
	Labels      []string `yaml:"labels"`
}

// Parse decodes a manifest from YAML bytes.
func Parse(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse seed manifest: %w", err)
	}
	return m, nil
}

// LoadFile reads and decodes a manifest from path.
func LoadFile(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, err
	}
	return Parse(data)
}

// Apply creates the manifest's projects and tasks through the store's
// regular operations, so seeded records get real ids and timestamps.
func Apply(m Manifest, st *store.Store) error {
	for _, p := range m.Projects {
		project, err := st.CreateProject(p.Name)
		if err != nil {
			return fmt.Errorf("seed project %q: %w", p.Name, err)
		}
		for _, t := range p.Tasks {
			fields := store.TaskFields{}
			title := t.Title
			fields.Title = &title
			if t.Description != "" {
				description := t.Description
				fields.Description = &description
			}
			if t.Status != "" {
				status := t.Status
				fields.Status = &status
			}
			if len(t.Assignees) > 0 {
				fields.Assignees = t.Assignees
				fields.HasAssignees = true
			}
			if t.DueDate != "" {
				dueDate := t.DueDate
				fields.DueDate = &dueDate
				fields.HasDueDate = true
			}
			if len(t.Labels) > 0 {
				fields.Labels = t.Labels
				fields.HasLabels = true
			}
			if _, err := st.CreateTask(project.ID, fields); err != nil {
				return fmt.Errorf("seed task %q in project %q: %w", t.Title, p.Name, err)
			}
		}
	}
	return nil
}
