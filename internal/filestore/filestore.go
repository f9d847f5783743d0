// Package filestore is the durable file-store collaborator: whole-blob
// reads and writes of text files under an application documents root.
// It is the authoritative side of the account dual-store.
package filestore

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store reads and writes whole blobs at paths relative to a root.
type Store interface {
	Read(path string) ([]byte, error)
	Write(path string, data []byte) error
	Exists(path string) (bool, error)
}

// OSStore is the operating-system implementation of Store.
type OSStore struct {
	root string
}

// NewOSStore returns a Store rooted at dir. The directory itself is
// created lazily on the first write.
func NewOSStore(dir string) *OSStore {
	return &OSStore{root: dir}
}

func (s *OSStore) abs(path string) string {
	return filepath.Join(s.root, path)
}

func (s *OSStore) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(s.abs(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// Write creates intermediate directories as needed, then writes the
// whole blob.
func (s *OSStore) Write(path string, data []byte) error {
	full := s.abs(path)
	if err := os.MkdirAll(filepath.Dir(full), 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(full), err)
	}
	if err := os.WriteFile(full, data, 0o660); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (s *OSStore) Exists(path string) (bool, error) {
	_, err := os.Stat(s.abs(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", path, err)
}
