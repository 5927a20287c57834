package service

import (
	"context"
	"strings"

	"github.com/sangkips/booth-pos/internal/domain/entity"
	"github.com/sangkips/booth-pos/internal/domain/repository"
	"github.com/sangkips/booth-pos/pkg/apperror"
	"github.com/sangkips/booth-pos/pkg/logger"
	"github.com/sangkips/booth-pos/pkg/vietqr"
	"github.com/sirupsen/logrus"
)

// BankDirectory lists the banks available for VietQR payments
type BankDirectory interface {
	ListBanks(ctx context.Context) ([]vietqr.Bank, error)
}

// SettingsService manages the merchant bank account
type SettingsService struct {
	settingsRepo repository.SettingsRepository
	qrService    *QRService
	banks        BankDirectory
	defaults     entity.BankAccount
	log          *logrus.Entry
}

// NewSettingsService creates a new settings service.
// defaults fills any account field that was never stored.
func NewSettingsService(
	settingsRepo repository.SettingsRepository,
	qrService *QRService,
	banks BankDirectory,
	defaults entity.BankAccount,
) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		qrService:    qrService,
		banks:        banks,
		defaults:     defaults,
		log:          logger.WithComponent("settings_service"),
	}
}

// Load returns the stored account with defaults applied.
// A read failure is logged and yields the defaults.
func (s *SettingsService) Load(ctx context.Context) entity.BankAccount {
	account, err := s.settingsRepo.GetBankAccount(ctx)
	if err != nil {
		s.log.WithError(err).Error("failed to load bank account, using defaults")
		return s.defaults
	}
	return account.WithDefaults(s.defaults)
}

// Save stores the account and clears the QR cache, since cached images
// encode the previous account.
func (s *SettingsService) Save(ctx context.Context, account entity.BankAccount) (entity.BankAccount, error) {
	account = entity.BankAccount{
		BankCode:      strings.TrimSpace(account.BankCode),
		AccountNumber: strings.TrimSpace(account.AccountNumber),
		AccountName:   strings.TrimSpace(account.AccountName),
	}

	if err := s.settingsRepo.SaveBankAccount(ctx, account); err != nil {
		return entity.BankAccount{}, err
	}
	if err := s.qrService.ClearAll(ctx); err != nil {
		return entity.BankAccount{}, err
	}

	s.log.WithField("bank_code", account.BankCode).Info("bank account saved, qr cache cleared")
	return account.WithDefaults(s.defaults), nil
}

// ListBanks returns the bank directory for the bank picker
func (s *SettingsService) ListBanks(ctx context.Context) ([]entity.Bank, error) {
	banks, err := s.banks.ListBanks(ctx)
	if err != nil {
		s.log.WithError(err).Warn("failed to fetch bank directory")
		return nil, apperror.Wrapf(apperror.ErrQRGeneration, err, "Failed to fetch bank list")
	}

	out := make([]entity.Bank, 0, len(banks))
	for _, b := range banks {
		out = append(out, entity.Bank{
			Code:      b.Code,
			Name:      b.Name,
			ShortName: b.ShortName,
			Logo:      b.Logo,
			BIN:       b.BIN,
		})
	}
	return out, nil
}
