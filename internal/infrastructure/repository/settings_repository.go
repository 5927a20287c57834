package repository

import (
	"context"

	"github.com/sangkips/booth-pos/internal/domain/entity"
	"github.com/sangkips/booth-pos/internal/domain/repository"
	"github.com/sangkips/booth-pos/internal/infrastructure/storage"
	"github.com/sangkips/booth-pos/pkg/apperror"
)

type settingsRepository struct {
	store storage.KeyValueStore
}

// NewSettingsRepository creates a new settings repository.
// Each account field is a plain string under its own key.
func NewSettingsRepository(store storage.KeyValueStore) repository.SettingsRepository {
	return &settingsRepository{store: store}
}

// GetBankAccount retrieves the stored account; missing keys yield empty fields
func (r *settingsRepository) GetBankAccount(ctx context.Context) (entity.BankAccount, error) {
	var account entity.BankAccount
	fields := []struct {
		key string
		dst *string
	}{
		{KeyBankCode, &account.BankCode},
		{KeyBankAccountNumber, &account.AccountNumber},
		{KeyBankAccountName, &account.AccountName},
	}
	for _, f := range fields {
		value, _, err := r.store.GetItem(ctx, f.key)
		if err != nil {
			return entity.BankAccount{}, apperror.Wrap(apperror.ErrStoreRead, err)
		}
		*f.dst = value
	}
	return account, nil
}

// SaveBankAccount writes all three keys
func (r *settingsRepository) SaveBankAccount(ctx context.Context, account entity.BankAccount) error {
	writes := []struct {
		key   string
		value string
	}{
		{KeyBankCode, account.BankCode},
		{KeyBankAccountNumber, account.AccountNumber},
		{KeyBankAccountName, account.AccountName},
	}
	for _, w := range writes {
		if err := r.store.SetItem(ctx, w.key, w.value); err != nil {
			return apperror.Wrap(apperror.ErrStoreWrite, err)
		}
	}
	return nil
}
