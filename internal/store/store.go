package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
)

// Store is the target directory images are saved into, backed by a blob
// bucket. On disk this is a fileblob bucket, so writes go through a temp
// file and a rename; a failed save never leaves a partial file behind.
type Store struct {
	bucket *blob.Bucket
	dir    string
}

// Open creates dir if needed (parents included, idempotent) and opens it as
// the image store. Failure here is fatal for the whole run; nothing can be
// fetched without a writable target directory.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create directory %s: %w", dir, err)
	}

	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{
		Metadata: fileblob.MetadataDontWrite,
	})
	if err != nil {
		return nil, fmt.Errorf("open directory %s: %w", dir, err)
	}

	return &Store{bucket: bucket, dir: dir}, nil
}

// New wraps an existing bucket as a store. Tests use this with memblob.
func New(bucket *blob.Bucket, dir string) *Store {
	return &Store{bucket: bucket, dir: dir}
}

// Dir returns the target directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the display path for a stored file name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Exists reports whether a file of the given name is already stored.
func (s *Store) Exists(ctx context.Context, name string) (bool, error) {
	return s.bucket.Exists(ctx, name)
}

// Save writes data under name and returns the file's path. The write is
// atomic at the bucket layer.
func (s *Store) Save(ctx context.Context, name string, data []byte) (string, error) {
	if err := s.bucket.WriteAll(ctx, name, data, nil); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return s.Path(name), nil
}

// Read returns the full content of a stored file.
func (s *Store) Read(ctx context.Context, name string) ([]byte, error) {
	return s.bucket.ReadAll(ctx, name)
}

// List returns the names of all stored files.
func (s *Store) List(ctx context.Context) ([]string, error) {
	var names []string

	iter := s.bucket.List(nil)
	for {
		obj, err := iter.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", s.dir, err)
		}
		if obj.IsDir {
			continue
		}
		names = append(names, obj.Key)
	}

	return names, nil
}

// Close releases the underlying bucket.
func (s *Store) Close() error {
	return s.bucket.Close()
}
