package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/shandysiswandi/arffview/internal/pkg/pkguid"
)

// TempStore hands out scratch files for uploads under a single directory.
type TempStore struct {
	dir string
	ids pkguid.NumberID
}

// NewTempStore returns a TempStore rooted at dir, or os.TempDir() when dir is empty.
func NewTempStore(dir string, ids pkguid.NumberID) *TempStore {
	if dir == "" {
		dir = os.TempDir()
	}
	return &TempStore{dir: dir, ids: ids}
}

// Create exclusively creates a new file readable only by the process owner.
//
// The returned release closes and deletes the file. It is safe to call more
// than once and must be deferred by the caller right after a successful Create.
func (s *TempStore) Create(ctx context.Context) (*os.File, func(), error) {
	name := filepath.Join(s.dir, fmt.Sprintf("arff-%d%s", s.ids.Generate(), arffExtension))

	f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, func() {}, err
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			_ = f.Close()
			if err := os.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
				slog.WarnContext(ctx, "failed to remove temp file", "path", name, "error", err)
			}
		})
	}

	return f, release, nil
}
