package blobstore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalDir stores blobs as flat files under a single uploads directory.
type LocalDir struct {
	root string
}

// NewLocalDir creates (if needed) and opens an uploads directory.
func NewLocalDir(root string) (*LocalDir, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, fmt.Errorf("uploads directory is required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, err
	}
	return &LocalDir{root: abs}, nil
}

// Write persists a blob under name, replacing any existing content.
func (d *LocalDir) Write(name string, data []byte) error {
	if d == nil {
		return fmt.Errorf("blob store is not configured")
	}
	path, err := d.pathFromName(name)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Open returns a reader over a blob's bytes plus its size.
func (d *LocalDir) Open(name string) (io.ReadCloser, int64, error) {
	if d == nil {
		return nil, 0, fmt.Errorf("blob store is not configured")
	}
	path, err := d.pathFromName(name)
	if err != nil {
		return nil, 0, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, 0, err
	}
	return f, info.Size(), nil
}

// Delete removes a blob. Missing files are ignored.
func (d *LocalDir) Delete(name string) error {
	if d == nil {
		return fmt.Errorf("blob store is not configured")
	}
	path, err := d.pathFromName(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Exists reports whether a blob is present on disk.
func (d *LocalDir) Exists(name string) bool {
	if d == nil {
		return false
	}
	path, err := d.pathFromName(name)
	if err != nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// pathFromName rejects names that would escape the uploads directory.
// Storage names embed client-supplied filenames, so this is the one place
// traversal is checked.
func (d *LocalDir) pathFromName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("storage name is required")
	}
	clean := filepath.Clean(filepath.FromSlash(name))
	if clean == "." || filepath.IsAbs(clean) ||
		clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) ||
		strings.Contains(clean, string(filepath.Separator)) {
		return "", fmt.Errorf("invalid storage name %q", name)
	}
	return filepath.Join(d.root, clean), nil
}
