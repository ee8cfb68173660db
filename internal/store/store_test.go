package store

import (
	"errors"
	"fmt"
	"testing"

	"epichub/internal/models"
)

func strPtr(s string) *string { return &s }

func TestCreateProjectAssignsIncreasingIDs(t *testing.T) {
	st := New()

	for i := 1; i <= 3; i++ {
		project, err := st.CreateProject(fmt.Sprintf("Project %d", i))
		if err != nil {
			t.Fatalf("create project %d: %v", i, err)
		}
		if project.ID != i {
			t.Fatalf("expected id %d, got %d", i, project.ID)
		}
		if project.OwnerID != nil {
			t.Fatalf("expected null owner_id, got %v", *project.OwnerID)
		}
	}

	projects := st.Projects()
	if len(projects) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(projects))
	}
	for i, project := range projects {
		if project.ID != i+1 {
			t.Fatalf("creation order broken at index %d: id %d", i, project.ID)
		}
	}
}

func TestCreateProjectRejectsEmptyName(t *testing.T) {
	st := New()

	for _, name := range []string{"", "   ", "\t\n"} {
		if _, err := st.CreateProject(name); !errors.Is(err, ErrInvalidProject) {
			t.Fatalf("name %q: expected ErrInvalidProject, got %v", name, err)
		}
	}
}

func TestCreateTaskRequiresExistingProject(t *testing.T) {
	st := New()

	_, err := st.CreateTask(1, TaskFields{Title: strPtr("orphan")})
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestCreateTaskDefaults(t *testing.T) {
	st := New()
	project, err := st.CreateProject("Demo")
	if err != nil {
		t.Fatalf("create project: %v", err)
	}

	task, err := st.CreateTask(project.ID, TaskFields{Title: strPtr("  Write spec  ")})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if task.Title != "Write spec" {
		t.Fatalf("expected trimmed title, got %q", task.Title)
	}
	if task.Status != models.DefaultTaskStatus {
		t.Fatalf("expected default status %q, got %q", models.DefaultTaskStatus, task.Status)
	}
	if task.Description != "" {
		t.Fatalf("expected empty description, got %q", task.Description)
	}
	if task.Assignees == nil || len(task.Assignees) != 0 {
		t.Fatalf("expected empty assignees, got %v", task.Assignees)
	}
	if task.Labels == nil || len(task.Labels) != 0 {
		t.Fatalf("expected empty labels, got %v", task.Labels)
	}
	if task.DueDate != nil {
		t.Fatalf("expected null due_date, got %q", *task.DueDate)
	}
}

func TestCreateTaskRequiresTitle(t *testing.T) {
	st := New()
	project, _ := st.CreateProject("Demo")

	if _, err := st.CreateTask(project.ID, TaskFields{}); !errors.Is(err, ErrInvalidTask) {
		t.Fatalf("missing title: expected ErrInvalidTask, got %v", err)
	}
	if _, err := st.CreateTask(project.ID, TaskFields{Title: strPtr("   ")}); !errors.Is(err, ErrInvalidTask) {
		t.Fatalf("blank title: expected ErrInvalidTask, got %v", err)
	}
}

func TestPatchTaskAppliesOnlySetFields(t *testing.T) {
	st := New()
	project, _ := st.CreateProject("Demo")
	created, err := st.CreateTask(project.ID, TaskFields{
		Title:       strPtr("Write spec"),
		Description: strPtr("first draft"),
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	updated, err := st.PatchTask(created.ID, TaskFields{Status: strPtr("Done")})
	if err != nil {
		t.Fatalf("patch task: %v", err)
	}
	if updated.Status != "Done" {
		t.Fatalf("expected status Done, got %q", updated.Status)
	}
	if updated.Title != created.Title || updated.Description != created.Description {
		t.Fatalf("unset fields changed: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("created_at must not change on patch")
	}
}

func TestPatchTaskIgnoresEmptyTitle(t *testing.T) {
	st := New()
	project, _ := st.CreateProject("Demo")
	created, _ := st.CreateTask(project.ID, TaskFields{Title: strPtr("Write spec")})

	updated, err := st.PatchTask(created.ID, TaskFields{Title: strPtr("  ")})
	if err != nil {
		t.Fatalf("patch task: %v", err)
	}
	if updated.Title != "Write spec" {
		t.Fatalf("blank title should be ignored, got %q", updated.Title)
	}
}

func TestPatchTaskDueDateNull(t *testing.T) {
	st := New()
	project, _ := st.CreateProject("Demo")
	created, _ := st.CreateTask(project.ID, TaskFields{
		Title:      strPtr("Write spec"),
		DueDate:    strPtr("2026-01-31"),
		HasDueDate: true,
	})
	if created.DueDate == nil || *created.DueDate != "2026-01-31" {
		t.Fatalf("expected due_date set, got %v", created.DueDate)
	}

	updated, err := st.PatchTask(created.ID, TaskFields{HasDueDate: true})
	if err != nil {
		t.Fatalf("patch task: %v", err)
	}
	if updated.DueDate != nil {
		t.Fatalf("expected due_date cleared, got %q", *updated.DueDate)
	}
}

func TestDeleteTask(t *testing.T) {
	st := New()
	project, _ := st.CreateProject("Demo")
	task, _ := st.CreateTask(project.ID, TaskFields{Title: strPtr("Write spec")})

	if err := st.DeleteTask(task.ID); err != nil {
		t.Fatalf("delete task: %v", err)
	}
	if err := st.DeleteTask(task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("second delete: expected ErrTaskNotFound, got %v", err)
	}

	tasks, err := st.TasksByProject(project.ID)
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected no tasks, got %d", len(tasks))
	}
}

func TestCreateFileVersioning(t *testing.T) {
	st := New()
	project, _ := st.CreateProject("Demo")

	for want := 1; want <= 3; want++ {
		file, err := st.CreateFile(project.ID, "report.pdf", "document", nil)
		if err != nil {
			t.Fatalf("create file %d: %v", want, err)
		}
		if file.Version != want {
			t.Fatalf("expected version %d, got %d", want, file.Version)
		}
	}

	other, err := st.CreateFile(project.ID, "notes.txt", "document", nil)
	if err != nil {
		t.Fatalf("create other file: %v", err)
	}
	if other.Version != 1 {
		t.Fatalf("different filename should start at version 1, got %d", other.Version)
	}
}

func TestCreateFileStorageName(t *testing.T) {
	st := New()
	project, _ := st.CreateProject("Demo")

	file, err := st.CreateFile(project.ID, "report.pdf", "document", nil)
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	want := fmt.Sprintf("%d_report.pdf", file.ID)
	if file.S3Key != want {
		t.Fatalf("expected storage name %q, got %q", want, file.S3Key)
	}
}

func TestCreateFileWriteFailureLeavesNoRecord(t *testing.T) {
	st := New()
	project, _ := st.CreateProject("Demo")

	boom := errors.New("disk full")
	if _, err := st.CreateFile(project.ID, "report.pdf", "document", func(models.File) error {
		return boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected write error, got %v", err)
	}

	files, err := st.FilesByProject(project.ID)
	if err != nil {
		t.Fatalf("list files: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("failed write must not create metadata, got %d records", len(files))
	}

	// The consumed id is not reused.
	file, err := st.CreateFile(project.ID, "report.pdf", "document", nil)
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	if file.ID != 2 {
		t.Fatalf("expected id 2 after a consumed id, got %d", file.ID)
	}
	if file.Version != 1 {
		t.Fatalf("failed upload must not count toward versions, got %d", file.Version)
	}
}

func TestRemoveFileKeepsVersionCounting(t *testing.T) {
	st := New()
	project, _ := st.CreateProject("Demo")

	first, _ := st.CreateFile(project.ID, "report.pdf", "document", nil)
	second, _ := st.CreateFile(project.ID, "report.pdf", "document", nil)
	if second.Version != 2 {
		t.Fatalf("expected version 2, got %d", second.Version)
	}

	removed, err := st.RemoveFile(first.ID)
	if err != nil {
		t.Fatalf("remove file: %v", err)
	}
	if removed.S3Key != first.S3Key {
		t.Fatalf("expected removed record %q, got %q", first.S3Key, removed.S3Key)
	}

	// Versions are derived from the records present at creation time;
	// deleting version 1 leaves one record, so the next upload is 2 again.
	third, _ := st.CreateFile(project.ID, "report.pdf", "document", nil)
	if third.Version != 2 {
		t.Fatalf("expected version 2 after deletion, got %d", third.Version)
	}

	if _, err := st.File(first.ID); !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}
