package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sangkips/booth-pos/internal/domain/entity"
	"github.com/sangkips/booth-pos/internal/infrastructure/repository"
	"github.com/sangkips/booth-pos/pkg/apperror"
	"github.com/sangkips/booth-pos/pkg/vietqr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultAccount = entity.BankAccount{BankCode: "CAKE", AccountNumber: "0862435375", AccountName: "NGUYEN THANH NAM"}

type fakeBanks struct {
	banks []vietqr.Bank
	err   error
}

func (f *fakeBanks) ListBanks(ctx context.Context) ([]vietqr.Bank, error) {
	return f.banks, f.err
}

func TestSettingsService_LoadDefaults(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, defaultAccount, env.settings.Load(context.Background()))
}

func TestSettingsService_LoadFillsMissingFields(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.store.SetItem(ctx, repository.KeyBankCode, "VCB"))

	account := env.settings.Load(ctx)
	assert.Equal(t, "VCB", account.BankCode)
	assert.Equal(t, defaultAccount.AccountNumber, account.AccountNumber)
	assert.Equal(t, defaultAccount.AccountName, account.AccountName)
}

func TestSettingsService_SaveClearsQRCache(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.qr.GetOrCreate(ctx, env.settings.Load(ctx), "HD000001", 10000)
	require.NoError(t, err)
	require.Len(t, env.qr.List(ctx, false), 1)

	saved, err := env.settings.Save(ctx, entity.BankAccount{BankCode: " VCB ", AccountNumber: "0011223344", AccountName: "TRAN VAN A"})
	require.NoError(t, err)
	assert.Equal(t, testAccount, saved)
	assert.Equal(t, testAccount, env.settings.Load(ctx))
	assert.Empty(t, env.qr.List(ctx, false))

	// the next request is fetched again with the new account
	img, err := env.qr.GetOrCreate(ctx, env.settings.Load(ctx), "HD000001", 10000)
	require.NoError(t, err)
	assert.False(t, img.Cached)
	assert.Equal(t, "VCB", env.fetcher.calls[len(env.fetcher.calls)-1].BankCode)
}

func TestSettingsService_SaveWriteFailure(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.store.failWrites = true

	_, err := env.settings.Save(ctx, testAccount)
	assert.ErrorIs(t, err, apperror.ErrStoreWrite)
}

func TestSettingsService_ListBanks(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	svc := NewSettingsService(nil, env.qr, &fakeBanks{banks: []vietqr.Bank{
		{Code: "VCB", Name: "Vietcombank", ShortName: "Vietcombank", Logo: "https://api.vietqr.io/img/VCB.png", BIN: "970436"},
	}}, defaultAccount)
	banks, err := svc.ListBanks(ctx)
	require.NoError(t, err)
	require.Len(t, banks, 1)
	assert.Equal(t, entity.Bank{Code: "VCB", Name: "Vietcombank", ShortName: "Vietcombank", Logo: "https://api.vietqr.io/img/VCB.png", BIN: "970436"}, banks[0])

	failing := NewSettingsService(nil, env.qr, &fakeBanks{err: errors.New("timeout")}, defaultAccount)
	_, err = failing.ListBanks(ctx)
	assert.Error(t, err)
}
