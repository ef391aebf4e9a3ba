package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where uploaded proof photos live. The local
// implementation writes under a base directory served by the HTTP
// server; an object-store implementation can be swapped in without
// touching the services.
type FileStorage interface {
	// Save writes the file content under the given relative path and
	// returns the stored path/key.
	Save(ctx context.Context, content io.Reader, path string) (string, error)

	// Open retrieves a stored file for reading.
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Remove deletes a stored file. Removing a missing file is not an
	// error.
	Remove(ctx context.Context, path string) error

	// PublicURL returns the URL clients use to fetch the file.
	PublicURL(path string) string

	// Exists reports whether a file is stored under the path.
	Exists(ctx context.Context, path string) (bool, error)
}
