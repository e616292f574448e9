package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/filex"
)

// FileAdapter stores each key as <dir>/<key>.json. Writes go through a
// temp file and rename so a crash never leaves a half-written collection.
type FileAdapter struct {
	dir string
}

// NewFileAdapter creates the data directory if needed and returns an
// adapter rooted there.
func NewFileAdapter(dir string) (*FileAdapter, error) {
	d, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, fmt.Errorf("init file adapter: %w", err)
	}
	return &FileAdapter{dir: d}, nil
}

func (a *FileAdapter) path(key string) string {
	return filepath.Join(a.dir, key+".json")
}

func (a *FileAdapter) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(a.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("key %q: %w", key, common.ErrNotFound)
		}
		return nil, fmt.Errorf("read key %q: %w", key, err)
	}
	return data, nil
}

func (a *FileAdapter) Put(_ context.Context, key string, data []byte) error {
	if err := filex.WriteFileAtomic(a.path(key), data); err != nil {
		return fmt.Errorf("write key %q: %w", key, err)
	}
	return nil
}
