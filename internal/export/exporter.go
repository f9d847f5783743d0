// Package export hands the serialized account collection to an opaque
// share/export mechanism: a visible file on the device, or an S3
// bucket. The payload is the same JSON array schema as the accounts
// file.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Exporter delivers a named JSON blob somewhere and reports where it
// ended up.
type Exporter interface {
	Export(ctx context.Context, name string, data []byte) (location string, err error)
}

// FileExporter writes the blob to a visible location under the
// documents directory, so the user can find it in the file system.
type FileExporter struct {
	dir string
}

func NewFileExporter(dir string) *FileExporter {
	return &FileExporter{dir: dir}
}

func (e *FileExporter) Export(ctx context.Context, name string, data []byte) (string, error) {
	if err := os.MkdirAll(e.dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", e.dir, err)
	}
	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, data, 0o660); err != nil {
		return "", fmt.Errorf("export to %s: %w", path, err)
	}
	return path, nil
}
