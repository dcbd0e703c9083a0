// Package storage provides the local-disk file store backing the upload API.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// StoredFile describes a file accepted by the store
type StoredFile struct {
	ID     string
	URL    string
	Format string
	Size   int64
}

// LocalStore writes uploaded files to a directory on disk. Files are renamed
// to a generated id so client-supplied names never touch the filesystem.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore creates the upload directory if needed
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Dir returns the directory files are stored in
func (s *LocalStore) Dir() string {
	return s.dir
}

// Save writes the reader's content under a generated id, keeping the
// original extension so content type can be inferred later.
func (s *LocalStore) Save(originalName string, r io.Reader) (*StoredFile, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	id := uuid.New().String() + ext

	f, err := os.Create(filepath.Join(s.dir, id))
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	size, err := io.Copy(f, r)
	if err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return &StoredFile{
		ID:     id,
		URL:    s.baseURL + "/" + id,
		Format: strings.TrimPrefix(ext, "."),
		Size:   size,
	}, nil
}

// Delete removes a stored file by id. The id is reduced to its base name so
// callers cannot escape the upload directory.
func (s *LocalStore) Delete(id string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(id)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
