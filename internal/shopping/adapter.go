package shopping

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Adapter is the persistence boundary for the store. Production code
// uses FileAdapter; tests inject MemoryAdapter.
type Adapter interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// FileAdapter persists the list as a JSON file.
type FileAdapter struct {
	path string
}

// NewFileAdapter creates an adapter writing to path.
func NewFileAdapter(path string) *FileAdapter {
	return &FileAdapter{path: path}
}

// Load reads the persisted blob. A missing file is not an error; it
// yields an empty blob.
func (a *FileAdapter) Load() ([]byte, error) {
	data, err := os.ReadFile(a.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

// Save writes the blob, creating the parent directory if needed.
func (a *FileAdapter) Save(data []byte) error {
	if dir := filepath.Dir(a.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(a.path, data, 0644)
}

// MemoryAdapter keeps the blob in memory. Used by tests.
type MemoryAdapter struct {
	data []byte
}

// NewMemoryAdapter creates an adapter seeded with data (may be nil).
func NewMemoryAdapter(data []byte) *MemoryAdapter {
	return &MemoryAdapter{data: data}
}

func (a *MemoryAdapter) Load() ([]byte, error) {
	return a.data, nil
}

func (a *MemoryAdapter) Save(data []byte) error {
	a.data = data
	return nil
}
