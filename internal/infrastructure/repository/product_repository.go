package repository

import (
	"context"

	"github.com/sangkips/booth-pos/internal/domain/entity"
	"github.com/sangkips/booth-pos/internal/domain/repository"
	"github.com/sangkips/booth-pos/internal/infrastructure/storage"
)

type productRepository struct {
	store storage.KeyValueStore
}

// NewProductRepository creates a new product repository
func NewProductRepository(store storage.KeyValueStore) repository.ProductRepository {
	return &productRepository{store: store}
}

func (r *productRepository) Load(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if _, err := loadJSON(ctx, r.store, KeyProducts, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []entity.Product{}
	}
	return products, nil
}

func (r *productRepository) Save(ctx context.Context, products []entity.Product) error {
	if products == nil {
		products = []entity.Product{}
	}
	return saveJSON(ctx, r.store, KeyProducts, products)
}
