package models

import (
	"fmt"
	"time"
)

// File is the metadata record for an uploaded blob.
//
// S3Key is the on-disk storage name; the field keeps its historical name
// so records survive a later move to object storage unchanged. Version
// counts uploads sharing the same (project_id, filename) pair and is never
// renumbered when older versions are deleted.
type File struct {
	ID         int       `json:"id"`
	ProjectID  int       `json:"project_id"`
	Filename   string    `json:"filename"`
	FileType   string    `json:"file_type"`
	Version    int       `json:"version"`
	S3Key      string    `json:"s3_key"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// StorageName derives the blob storage name for a file id and client filename.
func StorageName(id int, filename string) string {
	return fmt.Sprintf("%d_%s", id, filename)
}
