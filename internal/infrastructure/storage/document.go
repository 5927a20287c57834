package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

type fileDocument struct {
	fs   afero.Fs
	path string
}

// NewFileDocument returns a whole-file document stored at path
func NewFileDocument(fs afero.Fs, path string) Document {
	return &fileDocument{fs: fs, path: path}
}

func (d *fileDocument) Read(ctx context.Context) ([]byte, bool, error) {
	data, err := afero.ReadFile(d.fs, d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("storage: failed to read %s: %w", d.path, err)
	}
	return data, true, nil
}

func (d *fileDocument) Write(ctx context.Context, data []byte) error {
	return writeFileAtomic(d.fs, d.path, data)
}

// kvDocument stores a whole document under one key of a KeyValueStore
type kvDocument struct {
	store KeyValueStore
	key   string
}

// NewKVDocument exposes one key of a KeyValueStore as a Document
func NewKVDocument(store KeyValueStore, key string) Document {
	return &kvDocument{store: store, key: key}
}

func (d *kvDocument) Read(ctx context.Context) ([]byte, bool, error) {
	value, ok, err := d.store.GetItem(ctx, d.key)
	if err != nil || !ok {
		return nil, ok, err
	}
	return []byte(value), true, nil
}

func (d *kvDocument) Write(ctx context.Context, data []byte) error {
	return d.store.SetItem(ctx, d.key, string(data))
}
