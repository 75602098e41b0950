package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Default permissions for the data directory and snapshot files.
const (
	defaultDirPerm  = os.FileMode(0o755)
	defaultFilePerm = os.FileMode(0o644)
)

// FileStore keeps one <key>.json file per snapshot key inside a data
// directory. Saves go through a temp file plus rename so a crash mid-write
// never truncates the previous snapshot.
type FileStore struct {
	dir      string
	filePerm os.FileMode
}

// FileOption applies a configuration option to the FileStore.
type FileOption func(*FileStore)

// WithFilePermissions sets the mode used for snapshot files.
func WithFilePermissions(perm os.FileMode) FileOption {
	return func(s *FileStore) {
		if perm != 0 {
			s.filePerm = perm
		}
	}
}

// NewFileStore opens a file-backed store rooted at dir, creating the
// directory if needed.
func NewFileStore(dir string, opts ...FileOption) (*FileStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	s := &FileStore{
		dir:      filepath.Clean(dir),
		filePerm: defaultFilePerm,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := os.MkdirAll(s.dir, defaultDirPerm); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return s, nil
}

// Load reads the snapshot file for key.
func (s *FileStore) Load(_ context.Context, key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("load %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", key, err)
	}
	return data, nil
}

// Save writes the snapshot for key via temp file and rename.
func (s *FileStore) Save(_ context.Context, key string, value []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, s.filePerm); err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}

// Close is a no-op; the store holds no open handles between calls.
func (s *FileStore) Close() error {
	return nil
}

// path maps a snapshot key to its file, rejecting keys that would escape the
// data directory.
func (s *FileStore) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

var _ Store = (*FileStore)(nil)
