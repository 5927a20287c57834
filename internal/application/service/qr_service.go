package service

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/sangkips/booth-pos/internal/domain/entity"
	"github.com/sangkips/booth-pos/internal/domain/repository"
	"github.com/sangkips/booth-pos/pkg/apperror"
	"github.com/sangkips/booth-pos/pkg/logger"
	"github.com/sangkips/booth-pos/pkg/vietqr"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// MaxBulkAmounts caps how many amounts one bulk request may enumerate
const MaxBulkAmounts = 1000

// QRImageFetcher produces a self-contained QR image for one payment request
type QRImageFetcher interface {
	FetchImage(ctx context.Context, req vietqr.ImageRequest) (string, error)
}

// QRService serves payment QR images from the amount-keyed cache,
// fetching and caching on a miss.
type QRService struct {
	cacheRepo     repository.QRCacheRepository
	fetcher       QRImageFetcher
	limiter       *rate.Limiter
	paymentPrefix string
	log           *logrus.Entry

	// guards cache read-modify-write cycles and epoch
	mu sync.Mutex
	// bumped by ClearAll; images fetched under an older epoch are not cached
	epoch uint64
}

// NewQRService creates a new QR service. Bulk fetches are paced by limiter;
// a nil limiter means no pacing.
func NewQRService(
	cacheRepo repository.QRCacheRepository,
	fetcher QRImageFetcher,
	limiter *rate.Limiter,
	paymentPrefix string,
) *QRService {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	if paymentPrefix == "" {
		paymentPrefix = "Thanh toan"
	}
	return &QRService{
		cacheRepo:     cacheRepo,
		fetcher:       fetcher,
		limiter:       limiter,
		paymentPrefix: paymentPrefix,
		log:           logger.WithComponent("qr_service"),
	}
}

// QRImage is the result of a QR request
type QRImage struct {
	Amount int64  `json:"amount"`
	Image  string `json:"image"`
	Cached bool   `json:"cached"`
}

// AmountRange is a validated bulk range, inclusive of End
type AmountRange struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
	Step  int64 `json:"step"`
}

// Amounts enumerates Start, Start+Step, ... up to End
func (r AmountRange) Amounts() []int64 {
	var amounts []int64
	for a := r.Start; a <= r.End; a += r.Step {
		amounts = append(amounts, a)
		if a > r.End-r.Step {
			break
		}
	}
	return amounts
}

// BulkResult reports what a bulk run did with each amount
type BulkResult struct {
	Generated []int64 `json:"generated"`
	Skipped   []int64 `json:"skipped"`
	Failed    []int64 `json:"failed"`
}

// ParseRange validates bulk input given as text. Nothing is generated for a rejected range.
func ParseRange(start, end, step string) (AmountRange, error) {
	var fieldErrors []apperror.FieldError
	parse := func(field, value string) int64 {
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: field, Message: "Must be a whole number"})
		}
		return n
	}

	r := AmountRange{
		Start: parse("start", start),
		End:   parse("end", end),
		Step:  parse("step", step),
	}
	if len(fieldErrors) > 0 {
		return AmountRange{}, apperror.NewInvalidRangeError(fieldErrors)
	}
	return r, r.Validate()
}

// Validate checks step > 0, start > 0 and start <= end
func (r AmountRange) Validate() error {
	var fieldErrors []apperror.FieldError
	if r.Step <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "step", Message: "Step must be greater than zero"})
	}
	if r.Start <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "start", Message: "Start must be greater than zero"})
	}
	if r.Start > r.End {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "end", Message: "End must not be less than start"})
	}
	if len(fieldErrors) == 0 && (r.End-r.Start)/r.Step >= MaxBulkAmounts {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "step",
			Message: "Range covers more than " + strconv.Itoa(MaxBulkAmounts) + " amounts",
		})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewInvalidRangeError(fieldErrors)
	}
	return nil
}

func (s *QRService) imageRequest(account entity.BankAccount, billID string, amount int64) vietqr.ImageRequest {
	return vietqr.ImageRequest{
		BankCode:      account.BankCode,
		AccountNumber: account.AccountNumber,
		AccountName:   account.AccountName,
		Amount:        amount,
		AddInfo:       s.paymentPrefix + " " + billID,
	}
}

func (s *QRService) load(ctx context.Context) (entity.QRCache, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cache, err := s.cacheRepo.Load(ctx)
	return cache, s.epoch, err
}

// merge re-reads the cache and stores the new images in one write.
// It reports false, writing nothing, when the cache was cleared after epoch was read.
func (s *QRService) merge(ctx context.Context, images map[int64]string, epoch uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if epoch != s.epoch {
		return false, nil
	}
	cache, err := s.cacheRepo.Load(ctx)
	if err != nil {
		return false, err
	}
	for amount, image := range images {
		cache[amount] = image
	}
	if err := s.cacheRepo.Save(ctx, cache); err != nil {
		return false, err
	}
	return true, nil
}

// GetOrCreate returns the cached image for amount, fetching it on a miss.
// A fetch failure leaves the cache untouched.
func (s *QRService) GetOrCreate(ctx context.Context, account entity.BankAccount, billID string, amount int64) (*QRImage, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount
	}

	cache, epoch, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if image, ok := cache[amount]; ok {
		return &QRImage{Amount: amount, Image: image, Cached: true}, nil
	}

	image, err := s.fetcher.FetchImage(ctx, s.imageRequest(account, billID, amount))
	if err != nil {
		s.log.WithError(err).WithField("amount", amount).Warn("qr fetch failed")
		return nil, apperror.Wrap(apperror.ErrQRGeneration, err)
	}

	// persist even if the caller has gone away
	stored, err := s.merge(context.WithoutCancel(ctx), map[int64]string{amount: image}, epoch)
	if err != nil {
		return nil, err
	}
	if !stored {
		s.log.WithField("amount", amount).Warn("qr cache cleared during fetch, image not cached")
		return &QRImage{Amount: amount, Image: image}, nil
	}

	s.log.WithField("amount", amount).Info("qr image cached")
	return &QRImage{Amount: amount, Image: image}, nil
}

// BulkGenerate pre-fills the cache for every amount in r that is not cached yet.
// Individual failures are recorded and skipped; successful images are written once at the end.
// If ctx is cancelled mid-run, the images fetched so far are still saved and ctx.Err() is returned.
func (s *QRService) BulkGenerate(ctx context.Context, account entity.BankAccount, billID string, r AmountRange) (*BulkResult, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	cache, epoch, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	result := &BulkResult{Generated: []int64{}, Skipped: []int64{}, Failed: []int64{}}
	images := make(map[int64]string)
	var runErr error

	for _, amount := range r.Amounts() {
		if _, ok := cache[amount]; ok {
			result.Skipped = append(result.Skipped, amount)
			continue
		}
		if err := s.limiter.Wait(ctx); err != nil {
			runErr = err
			break
		}

		image, err := s.fetcher.FetchImage(ctx, s.imageRequest(account, billID, amount))
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				runErr = err
				break
			}
			s.log.WithError(err).WithField("amount", amount).Warn("bulk qr fetch failed")
			result.Failed = append(result.Failed, amount)
			continue
		}
		images[amount] = image
		result.Generated = append(result.Generated, amount)
	}

	if len(images) > 0 {
		stored, err := s.merge(context.WithoutCancel(ctx), images, epoch)
		if err != nil {
			return nil, err
		}
		if !stored {
			s.log.WithField("count", len(images)).Warn("qr cache cleared during bulk run, images discarded")
			result.Failed = append(result.Failed, result.Generated...)
			slices.Sort(result.Failed)
			result.Generated = []int64{}
		}
	}

	s.log.WithFields(logrus.Fields{
		"generated": len(result.Generated),
		"skipped":   len(result.Skipped),
		"failed":    len(result.Failed),
	}).Info("bulk qr generation finished")

	if runErr != nil {
		return result, runErr
	}
	return result, nil
}

// List returns cache entries in ascending amount order.
// An unreadable cache is logged and shown as empty.
func (s *QRService) List(ctx context.Context, withImages bool) []entity.QREntry {
	cache, _, err := s.load(ctx)
	if err != nil {
		s.log.WithError(err).Error("failed to load qr cache")
		return []entity.QREntry{}
	}
	return cache.Entries(withImages)
}

// ClearAll empties the cache
func (s *QRService) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	if err := s.cacheRepo.Save(ctx, entity.QRCache{}); err != nil {
		return err
	}
	s.log.Info("qr cache cleared")
	return nil
}

// RemoveEntry deletes the image for amount. Removing an absent amount succeeds.
func (s *QRService) RemoveEntry(ctx context.Context, amount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cache, err := s.cacheRepo.Load(ctx)
	if err != nil {
		return err
	}
	if _, ok := cache[amount]; !ok {
		return nil
	}
	delete(cache, amount)
	return s.cacheRepo.Save(ctx, cache)
}

// RemoveEntryAt deletes the entry at index in the order List returns.
// It returns the removed amount.
func (s *QRService) RemoveEntryAt(ctx context.Context, index int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cache, err := s.cacheRepo.Load(ctx)
	if err != nil {
		return 0, err
	}
	amounts := cache.Amounts()
	if index < 0 || index >= len(amounts) {
		return 0, apperror.NewNotFoundError("QR cache entry")
	}

	amount := amounts[index]
	delete(cache, amount)
	if err := s.cacheRepo.Save(ctx, cache); err != nil {
		return 0, err
	}
	return amount, nil
}
