package repository

import (
	"context"

	"github.com/sangkips/booth-pos/internal/domain/entity"
)

// ProductRepository loads and saves the whole catalog document.
// Load returns an empty slice when the document does not exist.
type ProductRepository interface {
	Load(ctx context.Context) ([]entity.Product, error)
	Save(ctx context.Context, products []entity.Product) error
}
