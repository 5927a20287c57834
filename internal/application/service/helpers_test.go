package service

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/sangkips/booth-pos/internal/infrastructure/repository"
	"github.com/sangkips/booth-pos/internal/infrastructure/storage"
	"github.com/sangkips/booth-pos/pkg/vietqr"
	"github.com/spf13/afero"
)

// fakeFetcher returns a deterministic data URI per amount and records calls
type fakeFetcher struct {
	mu       sync.Mutex
	calls    []vietqr.ImageRequest
	failFor  map[int64]bool
	failWith error
	// before runs ahead of each fetch, outside mu; a non-nil error fails the fetch
	before func(ctx context.Context, req vietqr.ImageRequest) error
}

func (f *fakeFetcher) FetchImage(ctx context.Context, req vietqr.ImageRequest) (string, error) {
	if f.before != nil {
		if err := f.before(ctx, req); err != nil {
			return "", err
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)
	if f.failWith != nil {
		return "", f.failWith
	}
	if f.failFor[req.Amount] {
		return "", errors.New("upstream unavailable")
	}
	return imageFor(req.Amount), nil
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func imageFor(amount int64) string {
	return "data:image/png;base64,QR" + strconv.FormatInt(amount, 10)
}

// failingStore returns errors for every operation after it is armed
type failingStore struct {
	storage.KeyValueStore
	failReads  bool
	failWrites bool
}

func (s *failingStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	if s.failReads {
		return "", false, errors.New("disk unreadable")
	}
	return s.KeyValueStore.GetItem(ctx, key)
}

func (s *failingStore) SetItem(ctx context.Context, key, value string) error {
	if s.failWrites {
		return errors.New("disk full")
	}
	return s.KeyValueStore.SetItem(ctx, key, value)
}

type testEnv struct {
	fs    afero.Fs
	store *failingStore

	products *ProductService
	bills    *BillService
	orders   *OrderService
	qr       *QRService
	settings *SettingsService
	fetcher  *fakeFetcher
}

var fixedNow = time.Date(2026, 10, 17, 7, 30, 0, 0, time.UTC)

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	fs := afero.NewMemMapFs()
	store := &failingStore{KeyValueStore: storage.NewFileStore(fs, "/data/store.json")}
	fetcher := &fakeFetcher{failFor: map[int64]bool{}}

	products := NewProductService(repository.NewProductRepository(store), "")
	bills := NewBillService(repository.NewBillRepository(store), time.FixedZone("ICT", 7*60*60), func() time.Time { return fixedNow })
	qr := NewQRService(
		repository.NewQRCacheRepository(storage.NewFileDocument(fs, "/data/Cache.json")),
		fetcher,
		nil,
		"Thanh toan",
	)

	return &testEnv{
		fs:       fs,
		store:    store,
		products: products,
		bills:    bills,
		orders:   NewOrderService(products, bills),
		qr:       qr,
		settings: NewSettingsService(repository.NewSettingsRepository(store), qr, nil, defaultAccount),
		fetcher:  fetcher,
	}
}
