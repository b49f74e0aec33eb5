// Package store provides durable keyed slot storage for the wikiai catalog.
// Each slot is a named UTF-8 blob that fully replaces its prior value on
// every write. Reads of missing or corrupt slots degrade to caller-supplied
// defaults at the slot helpers rather than failing the caller.
package store

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/wikiai/wikiai/pkg/errors"
)

// File permission defaults for created slot files and directories.
const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Store is durable keyed blob storage. Write fully replaces the prior
// value for a key; partial values for a single key are never observable.
type Store interface {
	// Read returns the last written value for key.
	Read(key string) ([]byte, error)

	// Write replaces the value for key.
	Write(key string, data []byte) error
}

// FileStore persists each slot as one file under a base directory.
type FileStore struct {
	dir string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a file store rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return nil, errors.WrapIO("create", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the base directory of the store.
func (s *FileStore) Dir() string {
	return s.dir
}

// Read returns the contents of the slot file for key.
func (s *FileStore) Read(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, errors.WrapIO("read", s.path(key), err)
	}
	return data, nil
}

// Write atomically replaces the slot file for key. The value is written
// to a temp file in the same directory and renamed over the target, so a
// reader never observes a partially written slot.
func (s *FileStore) Write(key string, data []byte) error {
	target := s.path(key)

	tmp, err := os.CreateTemp(s.dir, key+".tmp-*")
	if err != nil {
		return errors.WrapIO("create", target, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.WrapIO("write", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.WrapIO("close", tmpName, err)
	}
	if err := os.Chmod(tmpName, filePermissions); err != nil {
		_ = os.Remove(tmpName)
		return errors.WrapIO("chmod", tmpName, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		return errors.WrapIO("rename", target, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".yaml")
}

// MemoryStore keeps slots in memory. Useful for tests and ephemeral runs.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

// Read returns the value for key, or fs.ErrNotExist when absent.
func (s *MemoryStore) Read(key string) ([]byte, error) {
	s.mu.RLock()
	data, ok := s.slots[key]
	s.mu.RUnlock()
	if !ok {
		return nil, errors.WrapIO("read", key, fs.ErrNotExist)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Write replaces the value for key.
func (s *MemoryStore) Write(key string, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)

	s.mu.Lock()
	s.slots[key] = stored
	s.mu.Unlock()
	return nil
}
