package repository

import (
	"context"

	"github.com/sangkips/booth-pos/internal/domain/entity"
)

// QRCacheRepository loads and saves the amount -> image cache document.
// A missing document loads as an empty cache.
type QRCacheRepository interface {
	Load(ctx context.Context) (entity.QRCache, error)
	Save(ctx context.Context, cache entity.QRCache) error
}
