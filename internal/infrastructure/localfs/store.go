package localfs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"

	"github.com/spf13/afero"
)

// Store keeps uploaded assets on a filesystem rooted at the public directory.
// Keys are slash-separated paths relative to that root; the locator of a key
// is "/" + key, which the router serves back as a static file.
type Store struct {
	fs afero.Fs
}

// NewStore returns a Store on the OS filesystem under root.
func NewStore(root string) *Store {
	return NewStoreFs(afero.NewBasePathFs(afero.NewOsFs(), root))
}

// NewStoreFs wraps an arbitrary afero filesystem; tests pass a MemMapFs.
func NewStoreFs(fsys afero.Fs) *Store {
	return &Store{fs: fsys}
}

func (s *Store) Put(_ context.Context, key string, r io.Reader, _ string) (string, error) {
	name := rooted(key)
	if err := s.fs.MkdirAll(path.Dir(name), 0o755); err != nil {
		return "", fmt.Errorf("create asset dir: %w", err)
	}
	f, err := s.fs.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create asset file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = s.fs.Remove(name)
		return "", fmt.Errorf("write asset file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = s.fs.Remove(name)
		return "", fmt.Errorf("close asset file: %w", err)
	}
	return name, nil
}

// Delete removes the file. A missing file is not an error.
func (s *Store) Delete(_ context.Context, key string) error {
	err := s.fs.Remove(rooted(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove asset file: %w", err)
	}
	return nil
}

// FileSystem exposes the store for static serving. Only files can be
// opened, so directory listings are never rendered.
func (s *Store) FileSystem() http.FileSystem {
	return filesOnly{afero.NewHttpFs(s.fs)}
}

type filesOnly struct {
	http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.FileSystem.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, fs.ErrNotExist
	}
	return file, nil
}

func rooted(key string) string {
	return path.Clean("/" + key)
}
