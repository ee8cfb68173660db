package blobstore

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalDirRoundTrip(t *testing.T) {
	dir, err := NewLocalDir(filepath.Join(t.TempDir(), "uploads"))
	if err != nil {
		t.Fatalf("new local dir: %v", err)
	}

	content := []byte("hello, blob")
	if err := dir.Write("1_report.pdf", content); err != nil {
		t.Fatalf("write blob: %v", err)
	}
	if !dir.Exists("1_report.pdf") {
		t.Fatal("expected blob to exist")
	}

	r, size, err := dir.Open("1_report.pdf")
	if err != nil {
		t.Fatalf("open blob: %v", err)
	}
	defer r.Close()
	if size != int64(len(content)) {
		t.Fatalf("expected size %d, got %d", len(content), size)
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read blob: %v", err)
	}
	if string(got) != string(content) {
		t.Fatalf("content mismatch: %q", got)
	}
}

func TestLocalDirDelete(t *testing.T) {
	dir, err := NewLocalDir(t.TempDir())
	if err != nil {
		t.Fatalf("new local dir: %v", err)
	}

	if err := dir.Write("2_notes.txt", []byte("x")); err != nil {
		t.Fatalf("write blob: %v", err)
	}
	if err := dir.Delete("2_notes.txt"); err != nil {
		t.Fatalf("delete blob: %v", err)
	}
	if dir.Exists("2_notes.txt") {
		t.Fatal("expected blob to be gone")
	}

	// Deleting a missing blob is not an error.
	if err := dir.Delete("2_notes.txt"); err != nil {
		t.Fatalf("delete missing blob: %v", err)
	}
}

func TestLocalDirOpenMissing(t *testing.T) {
	dir, err := NewLocalDir(t.TempDir())
	if err != nil {
		t.Fatalf("new local dir: %v", err)
	}

	if _, _, err := dir.Open("9_ghost.bin"); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLocalDirRejectsTraversal(t *testing.T) {
	root := t.TempDir()
	dir, err := NewLocalDir(root)
	if err != nil {
		t.Fatalf("new local dir: %v", err)
	}

	for _, name := range []string{"../escape", "/etc/passwd", "a/b.txt", "..", ""} {
		if err := dir.Write(name, []byte("x")); err == nil {
			t.Fatalf("name %q: expected write to be rejected", name)
		}
	}

	entries, err := os.ReadDir(filepath.Dir(root))
	if err != nil {
		t.Fatalf("read parent dir: %v", err)
	}
	for _, entry := range entries {
		if entry.Name() == "escape" {
			t.Fatal("traversal escaped the uploads directory")
		}
	}
}
