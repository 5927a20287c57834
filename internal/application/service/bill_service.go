package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/sangkips/booth-pos/internal/domain/entity"
	"github.com/sangkips/booth-pos/internal/domain/repository"
	"github.com/sangkips/booth-pos/pkg/apperror"
	"github.com/sangkips/booth-pos/pkg/logger"
	"github.com/sirupsen/logrus"
)

// BillDateLayout is the short vi-VN style used on bills, e.g. "14:05 17/10/2026"
const BillDateLayout = "15:04 02/01/2006"

// Clock returns the current time; tests substitute a fixed one
type Clock func() time.Time

// BillService creates bills and maintains the incomplete-bills set
type BillService struct {
	billRepo repository.BillRepository
	location *time.Location
	now      Clock
	log      *logrus.Entry

	// guards incomplete-set read-modify-write cycles
	mu sync.Mutex
}

// NewBillService creates a new bill service. Bill timestamps are rendered in loc.
func NewBillService(billRepo repository.BillRepository, loc *time.Location, now Clock) *BillService {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &BillService{
		billRepo: billRepo,
		location: loc,
		now:      now,
		log:      logger.WithComponent("bill_service"),
	}
}

// NewBillID returns "HD" followed by the last six digits of the Unix millisecond clock
func NewBillID(t time.Time) string {
	millis := strconv.FormatInt(t.UnixMilli(), 10)
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}
	return "HD" + millis
}

// CreateBill snapshots items into a bill. A non-empty existingID is kept
// (resuming an incomplete bill); otherwise a fresh id is generated.
// The timestamp is always the current time.
func (s *BillService) CreateBill(items []entity.LineItem, existingID string) entity.Bill {
	now := s.now()
	id := existingID
	if id == "" {
		id = NewBillID(now)
	}

	products := make([]entity.LineItem, len(items))
	copy(products, items)

	return entity.Bill{
		BillID:   id,
		DateTime: now.In(s.location).Format(BillDateLayout),
		Products: products,
	}
}

// MarkIncomplete parks a bill in the incomplete set.
// It reports false when a bill with the same id is already there.
func (s *BillService) MarkIncomplete(ctx context.Context, bill entity.Bill) (bool, error) {
	if bill.BillID == "" {
		return false, apperror.NewBadRequestError("Bill id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bills, err := s.billRepo.LoadIncomplete(ctx)
	if err != nil {
		return false, err
	}
	for _, b := range bills {
		if b.BillID == bill.BillID {
			return false, nil
		}
	}

	bills = append(bills, bill)
	if err := s.billRepo.SaveIncomplete(ctx, bills); err != nil {
		return false, err
	}

	s.log.WithField("bill_id", bill.BillID).Info("bill saved as incomplete")
	return true, nil
}

// MarkPaid removes a bill from the incomplete set.
// It reports whether a bill was removed; paying an unknown id is not an error.
func (s *BillService) MarkPaid(ctx context.Context, billID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bills, err := s.billRepo.LoadIncomplete(ctx)
	if err != nil {
		return false, err
	}

	kept := make([]entity.Bill, 0, len(bills))
	for _, b := range bills {
		if b.BillID != billID {
			kept = append(kept, b)
		}
	}

	if err := s.billRepo.SaveIncomplete(ctx, kept); err != nil {
		return false, err
	}

	removed := len(kept) != len(bills)
	s.log.WithFields(logrus.Fields{"bill_id": billID, "removed": removed}).Info("bill paid")
	return removed, nil
}

// ListIncomplete returns the incomplete set in insertion order.
// An unreadable set is logged and shown as empty.
func (s *BillService) ListIncomplete(ctx context.Context) []entity.Bill {
	bills, err := s.billRepo.LoadIncomplete(ctx)
	if err != nil {
		s.log.WithError(err).Error("failed to load incomplete bills")
		return []entity.Bill{}
	}
	return bills
}

// GetIncomplete finds one incomplete bill, used to resume payment
func (s *BillService) GetIncomplete(ctx context.Context, billID string) (*entity.Bill, error) {
	bills, err := s.billRepo.LoadIncomplete(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bills {
		if bills[i].BillID == billID {
			return &bills[i], nil
		}
	}
	return nil, apperror.NewNotFoundError("Bill")
}
