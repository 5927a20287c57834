package storage

import "context"

// KeyValueStore is a persistent string-keyed store holding serialized documents.
// A missing key is reported with ok == false, never as an error.
type KeyValueStore interface {
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}

// Document is a single whole-file JSON document addressed by path
type Document interface {
	// Read returns the raw document; ok is false when it does not exist yet
	Read(ctx context.Context) (data []byte, ok bool, err error)
	// Write replaces the whole document
	Write(ctx context.Context, data []byte) error
}
