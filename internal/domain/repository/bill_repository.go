package repository

import (
	"context"

	"github.com/sangkips/booth-pos/internal/domain/entity"
)

// BillRepository loads and saves the incomplete-bills set as one document
type BillRepository interface {
	LoadIncomplete(ctx context.Context) ([]entity.Bill, error)
	SaveIncomplete(ctx context.Context, bills []entity.Bill) error
}
