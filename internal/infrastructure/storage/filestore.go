// Package storage persists generated documents on the local filesystem.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStore writes files atomically: data lands in a temp file in the target
// directory and is renamed into place, so readers never observe a partial
// document.
type FileStore struct{}

// NewFileStore builds a local filesystem store.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// WriteFile writes data to path, creating parent directories as needed.
// On any error the target path is left untouched.
func (s *FileStore) WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}

	// Temp file in the same directory so the rename stays on one filesystem.
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
