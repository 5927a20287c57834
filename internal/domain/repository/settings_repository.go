package repository

import (
	"context"

	"github.com/sangkips/booth-pos/internal/domain/entity"
)

// SettingsRepository defines access to the bank account settings.
// Fields that were never stored come back empty; defaults are the caller's concern.
type SettingsRepository interface {
	GetBankAccount(ctx context.Context) (entity.BankAccount, error)
	SaveBankAccount(ctx context.Context, account entity.BankAccount) error
}
