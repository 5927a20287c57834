package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// fileStore keeps every key in one JSON object on disk, like the device
// key-value store the workflow was designed around. Every call re-reads the
// file so other processes sharing it (the API server and posctl) are seen.
type fileStore struct {
	fs   afero.Fs
	path string

	mu sync.Mutex
}

// NewFileStore creates a key-value store persisted as a JSON file at path
func NewFileStore(fs afero.Fs, path string) KeyValueStore {
	return &fileStore{fs: fs, path: path}
}

func (s *fileStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return "", false, err
	}
	value, ok := items[key]
	return value, ok, nil
}

func (s *fileStore) SetItem(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}
	items[key] = value
	return s.flush(items)
}

func (s *fileStore) RemoveItem(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := items[key]; !ok {
		return nil
	}
	delete(items, key)
	return s.flush(items)
}

func (s *fileStore) load() (map[string]string, error) {
	items := make(map[string]string)
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return items, nil
		}
		return nil, fmt.Errorf("storage: failed to read %s: %w", s.path, err)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("storage: corrupt store file %s: %w", s.path, err)
		}
	}
	return items, nil
}

func (s *fileStore) flush(items map[string]string) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("storage: failed to encode store: %w", err)
	}
	return writeFileAtomic(s.fs, s.path, data)
}

// writeFileAtomic writes to a sibling temp file and renames it over path
func writeFileAtomic(fs afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: failed to create %s: %w", dir, err)
	}

	tmp := path + ".tmp"
	if err := afero.WriteFile(fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("storage: failed to write %s: %w", tmp, err)
	}
	if err := fs.Rename(tmp, path); err != nil {
		_ = fs.Remove(tmp)
		return fmt.Errorf("storage: failed to replace %s: %w", path, err)
	}
	return nil
}
