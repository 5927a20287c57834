package repository

import (
	"context"

	"github.com/sangkips/booth-pos/internal/domain/entity"
	"github.com/sangkips/booth-pos/internal/domain/repository"
	"github.com/sangkips/booth-pos/internal/infrastructure/storage"
)

type billRepository struct {
	store storage.KeyValueStore
}

// NewBillRepository creates a new incomplete-bills repository
func NewBillRepository(store storage.KeyValueStore) repository.BillRepository {
	return &billRepository{store: store}
}

func (r *billRepository) LoadIncomplete(ctx context.Context) ([]entity.Bill, error) {
	var bills []entity.Bill
	if _, err := loadJSON(ctx, r.store, KeyIncompleteBills, &bills); err != nil {
		return nil, err
	}
	if bills == nil {
		bills = []entity.Bill{}
	}
	return bills, nil
}

func (r *billRepository) SaveIncomplete(ctx context.Context, bills []entity.Bill) error {
	if bills == nil {
		bills = []entity.Bill{}
	}
	return saveJSON(ctx, r.store, KeyIncompleteBills, bills)
}
