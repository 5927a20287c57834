package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sangkips/booth-pos/internal/domain/entity"
	"github.com/sangkips/booth-pos/internal/domain/repository"
	"github.com/sangkips/booth-pos/internal/infrastructure/storage"
	"github.com/sangkips/booth-pos/pkg/apperror"
)

type qrCacheRepository struct {
	doc storage.Document
}

// NewQRCacheRepository creates a QR cache repository over a whole-file document
func NewQRCacheRepository(doc storage.Document) repository.QRCacheRepository {
	return &qrCacheRepository{doc: doc}
}

func (r *qrCacheRepository) Load(ctx context.Context) (entity.QRCache, error) {
	data, ok, err := r.doc.Read(ctx)
	if err != nil {
		return nil, apperror.Wrap(apperror.ErrStoreRead, err)
	}
	cache := make(entity.QRCache)
	if !ok || len(data) == 0 {
		return cache, nil
	}
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, apperror.Wrap(apperror.ErrStoreRead, fmt.Errorf("decode qr cache: %w", err))
	}
	return cache, nil
}

func (r *qrCacheRepository) Save(ctx context.Context, cache entity.QRCache) error {
	if cache == nil {
		cache = make(entity.QRCache)
	}
	data, err := json.Marshal(cache)
	if err != nil {
		return apperror.Wrap(apperror.ErrStoreWrite, fmt.Errorf("encode qr cache: %w", err))
	}
	if err := r.doc.Write(ctx, data); err != nil {
		return apperror.Wrap(apperror.ErrStoreWrite, err)
	}
	return nil
}
