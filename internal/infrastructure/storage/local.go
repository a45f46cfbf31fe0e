package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/taskhub/task-service/internal/domain"
)

// LocalStore writes uploaded photos to a directory on disk. Files are named
// by the client-supplied filename; an existing file with the same name is
// overwritten.
type LocalStore struct {
	dir       string
	publicURL string // path prefix the router serves the directory under
}

func NewLocalStore(dir, publicURL string) (*LocalStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("empty upload dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, publicURL: publicURL}, nil
}

func (s *LocalStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	// Base strips any directory components a client might smuggle in.
	name := filepath.Base(filepath.Clean(filename))
	if name == "." || name == string(filepath.Separator) {
		return "", domain.ErrInvalidUpload("bad filename")
	}

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", domain.ErrStoreFailure(err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", domain.ErrStoreFailure(err)
	}
	if err := f.Close(); err != nil {
		return "", domain.ErrStoreFailure(err)
	}

	return s.publicURL + "/" + name, nil
}
