package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore keeps uploads under a local directory. Stored references are
// "/uploads/<key>" paths the HTTP layer serves as static files.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	key := randomKey(filename)

	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating upload dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("writing upload: %w", err)
	}

	return "/uploads/" + key, nil
}

func (s *DiskStore) Delete(ctx context.Context, ref string) error {
	key := strings.TrimPrefix(ref, "/uploads/")
	return os.Remove(filepath.Join(s.dir, filepath.FromSlash(key)))
}

// Dir returns the base directory, used to mount the static file handler.
func (s *DiskStore) Dir() string {
	return s.dir
}
