package storage

import (
	"context"
	"errors"

	"github.com/sangkips/booth-pos/internal/domain/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a key-value store backed by the kv_entries table
func NewGormStore(db *gorm.DB) KeyValueStore {
	return &gormStore{db: db}
}

func (s *gormStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	var row entity.KVEntry
	err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return row.Value, true, nil
}

func (s *gormStore) SetItem(ctx context.Context, key, value string) error {
	row := entity.KVEntry{Key: key, Value: value}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}

func (s *gormStore) RemoveItem(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&entity.KVEntry{}, "key = ?", key).Error
}
