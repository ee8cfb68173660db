package blobstore

import "io"

// Store is the byte-storage abstraction behind file uploads. Blobs are
// keyed by the storage name recorded in file metadata.
type Store interface {
	Write(name string, data []byte) error
	// Open returns a streaming reader for a blob together with its byte
	// length, so callers can set a length header before streaming.
	Open(name string) (io.ReadCloser, int64, error)
	// Delete removes a blob. Missing blobs are not an error.
	Delete(name string) error
	Exists(name string) bool
}
