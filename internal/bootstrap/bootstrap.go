package bootstrap

import (
	"fmt"

	"github.com/sangkips/booth-pos/internal/application/service"
	"github.com/sangkips/booth-pos/internal/config"
	"github.com/sangkips/booth-pos/internal/domain/entity"
	"github.com/sangkips/booth-pos/internal/infrastructure/database"
	"github.com/sangkips/booth-pos/internal/infrastructure/repository"
	"github.com/sangkips/booth-pos/internal/infrastructure/storage"
	"github.com/sangkips/booth-pos/pkg/printer"
	"github.com/sangkips/booth-pos/pkg/vietqr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// Services is the application object graph shared by the API server and the CLI
type Services struct {
	Products *service.ProductService
	Orders   *service.OrderService
	Bills    *service.BillService
	QR       *service.QRService
	Settings *service.SettingsService
	Printer  *service.PrinterService

	db *gorm.DB
}

// Build wires storage, clients and services from configuration.
// fs backs the file store, the QR cache file and USB printer devices.
func Build(cfg *config.Config, fs afero.Fs) (*Services, error) {
	store, cacheDoc, db, err := openStorage(cfg, fs)
	if err != nil {
		return nil, err
	}

	qrClient := vietqr.NewClient(vietqr.Config{
		ImageBaseURL: cfg.VietQR.ImageBaseURL,
		BanksURL:     cfg.VietQR.BanksURL,
		Template:     cfg.VietQR.Template,
		Timeout:      cfg.VietQR.Timeout,
	})

	var fetchLimiter *rate.Limiter
	if cfg.VietQR.FetchPerSec > 0 {
		fetchLimiter = rate.NewLimiter(rate.Limit(cfg.VietQR.FetchPerSec), 1)
	}

	thermalPrinter, err := printer.New(printer.Config{
		Type:    cfg.Printer.Type,
		USBPath: cfg.Printer.USBPath,
		Address: cfg.Printer.Address,
	}, fs)
	if err != nil {
		logrus.WithError(err).Warn("failed to initialize printer, printing disabled")
		thermalPrinter = printer.NewNullPrinter()
	}

	products := service.NewProductService(repository.NewProductRepository(store), cfg.Storage.DefaultProductImage)
	bills := service.NewBillService(repository.NewBillRepository(store), cfg.Shop.Location(), nil)
	qr := service.NewQRService(repository.NewQRCacheRepository(cacheDoc), qrClient, fetchLimiter, cfg.VietQR.PaymentPrefix)
	settings := service.NewSettingsService(
		repository.NewSettingsRepository(store),
		qr,
		qrClient,
		entity.BankAccount{
			BankCode:      cfg.Bank.BankCode,
			AccountNumber: cfg.Bank.AccountNumber,
			AccountName:   cfg.Bank.AccountName,
		},
	)
	receiptHeader := entity.ReceiptHeader{
		StoreName: cfg.Shop.Name,
		Address:   cfg.Shop.Address,
		Phone:     cfg.Shop.Phone,
	}

	return &Services{
		Products: products,
		Orders:   service.NewOrderService(products, bills),
		Bills:    bills,
		QR:       qr,
		Settings: settings,
		Printer:  service.NewPrinterService(thermalPrinter, receiptHeader, cfg.Printer.CharWidth),
		db:       db,
	}, nil
}

func openStorage(cfg *config.Config, fs afero.Fs) (storage.KeyValueStore, storage.Document, *gorm.DB, error) {
	switch cfg.Storage.Driver {
	case "file", "":
		store := storage.NewFileStore(fs, cfg.Storage.KVFilePath())
		doc := storage.NewFileDocument(fs, cfg.Storage.QRCachePath())
		logrus.WithField("path", cfg.Storage.Path).Info("using file storage")
		return store, doc, nil, nil
	case "postgres":
		db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, nil, err
		}
		store := storage.NewGormStore(db)
		return store, storage.NewKVDocument(store, repository.KeyQRCache), db, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown storage driver %q (use file or postgres)", cfg.Storage.Driver)
	}
}

// Close releases the database connection, if any
func (s *Services) Close() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
