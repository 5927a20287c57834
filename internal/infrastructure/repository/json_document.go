package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sangkips/booth-pos/internal/infrastructure/storage"
	"github.com/sangkips/booth-pos/pkg/apperror"
)

// loadJSON decodes the value stored under key into v.
// It reports false without error when the key is absent.
func loadJSON(ctx context.Context, store storage.KeyValueStore, key string, v interface{}) (bool, error) {
	raw, ok, err := store.GetItem(ctx, key)
	if err != nil {
		return false, apperror.Wrap(apperror.ErrStoreRead, err)
	}
	if !ok || raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, apperror.Wrap(apperror.ErrStoreRead, fmt.Errorf("decode %s: %w", key, err))
	}
	return true, nil
}

// saveJSON replaces the whole value stored under key with v
func saveJSON(ctx context.Context, store storage.KeyValueStore, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return apperror.Wrap(apperror.ErrStoreWrite, fmt.Errorf("encode %s: %w", key, err))
	}
	if err := store.SetItem(ctx, key, string(data)); err != nil {
		return apperror.Wrap(apperror.ErrStoreWrite, err)
	}
	return nil
}
