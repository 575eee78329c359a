package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileMedium stores each named document as a JSON file under a data
// directory. Writes go through a temp file and rename so a crash mid-write
// never leaves a truncated document behind.
type FileMedium struct {
	dir string
}

// NewFileMedium creates a FileMedium rooted at dir, creating it if needed.
func NewFileMedium(dir string) (*FileMedium, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &FileMedium{dir: dir}, nil
}

func (m *FileMedium) path(name string) string {
	return filepath.Join(m.dir, name+".json")
}

// Get reads the document stored under name.
func (m *FileMedium) Get(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(m.path(name))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading blob %s: %w", name, err)
	}

	return data, nil
}

// Set atomically replaces the document stored under name.
func (m *FileMedium) Set(_ context.Context, name string, data []byte) error {
	tmp, err := os.CreateTemp(m.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for blob %s: %w", name, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("writing blob %s: %w", name, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("closing blob %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), m.path(name)); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("replacing blob %s: %w", name, err)
	}

	return nil
}
