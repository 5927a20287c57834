package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/sangkips/booth-pos/internal/domain/entity"
	"github.com/sangkips/booth-pos/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var billIDPattern = regexp.MustCompile(`^HD\d{6}$`)

func sampleItems() []entity.LineItem {
	return []entity.LineItem{
		{Name: "Latte", Price: 40000, Qty: 2},
		{Name: "Bánh flan", Price: 15000, Qty: 1},
	}
}

func TestNewBillID(t *testing.T) {
	id := NewBillID(time.UnixMilli(1760686200123))
	assert.Equal(t, "HD200123", id)
	assert.Regexp(t, billIDPattern, NewBillID(time.Now()))
}

func TestBillService_CreateBill(t *testing.T) {
	env := newTestEnv(t)

	bill := env.bills.CreateBill(sampleItems(), "")
	assert.Regexp(t, billIDPattern, bill.BillID)
	assert.Equal(t, NewBillID(fixedNow), bill.BillID)
	// 07:30 UTC is 14:30 in the shop timezone
	assert.Equal(t, "14:30 17/10/2026", bill.DateTime)
	assert.Equal(t, int64(95000), bill.Total())
	assert.Equal(t, 3, bill.ItemCount())
}

func TestBillService_CreateBillKeepsExistingID(t *testing.T) {
	env := newTestEnv(t)

	bill := env.bills.CreateBill(sampleItems(), "HD123456")
	assert.Equal(t, "HD123456", bill.BillID)
}

func TestBillService_IncompleteLifecycle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	bill := env.bills.CreateBill(sampleItems(), "HD000001")

	added, err := env.bills.MarkIncomplete(ctx, bill)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = env.bills.MarkIncomplete(ctx, bill)
	require.NoError(t, err)
	assert.False(t, added)

	bills := env.bills.ListIncomplete(ctx)
	require.Len(t, bills, 1)
	assert.Equal(t, bill, bills[0])

	resumed, err := env.bills.GetIncomplete(ctx, "HD000001")
	require.NoError(t, err)
	reopened := env.bills.CreateBill(resumed.Products, resumed.BillID)
	assert.Equal(t, "HD000001", reopened.BillID)
	assert.Equal(t, bill.Products, reopened.Products)

	removed, err := env.bills.MarkPaid(ctx, "HD000001")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = env.bills.MarkPaid(ctx, "HD000001")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Empty(t, env.bills.ListIncomplete(ctx))
}

func TestBillService_PaidLeavesOtherBills(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	for _, id := range []string{"HD000001", "HD000002", "HD000003"} {
		_, err := env.bills.MarkIncomplete(ctx, env.bills.CreateBill(sampleItems(), id))
		require.NoError(t, err)
	}

	_, err := env.bills.MarkPaid(ctx, "HD000002")
	require.NoError(t, err)

	var ids []string
	for _, b := range env.bills.ListIncomplete(ctx) {
		ids = append(ids, b.BillID)
	}
	assert.Equal(t, []string{"HD000001", "HD000003"}, ids)
}

func TestBillService_GetIncompleteMissing(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.bills.GetIncomplete(context.Background(), "HD999999")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestBillService_StoreFailures(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	bill := env.bills.CreateBill(sampleItems(), "HD000001")

	env.store.failReads = true
	_, err := env.bills.MarkIncomplete(ctx, bill)
	assert.ErrorIs(t, err, apperror.ErrStoreRead)
	assert.Empty(t, env.bills.ListIncomplete(ctx))

	env.store.failReads = false
	env.store.failWrites = true
	_, err = env.bills.MarkIncomplete(ctx, bill)
	assert.ErrorIs(t, err, apperror.ErrStoreWrite)
}

func TestOrderService_PreviewAndCheckout(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	for _, in := range []ProductInput{{Name: "Latte", Price: 40000}, {Name: "Mocha", Price: 45000}, {Name: "Trà", Price: 20000}} {
		_, err := env.products.Add(ctx, in)
		require.NoError(t, err)
	}

	sel := entity.Selection{}
	sel.Increase("Trà")
	sel.Increase("Latte")
	sel.Increase("Latte")
	sel.Increase("Unknown")

	preview := env.orders.Preview(ctx, sel)
	require.Len(t, preview.Items, 2)
	assert.Equal(t, "Latte", preview.Items[0].Name)
	assert.Equal(t, "Trà", preview.Items[1].Name)
	assert.Equal(t, int64(100000), preview.Total)
	assert.Equal(t, 3, preview.ItemCount)

	bill, err := env.orders.Checkout(ctx, sel)
	require.NoError(t, err)
	assert.Regexp(t, billIDPattern, bill.BillID)
	assert.Equal(t, preview.Total, bill.Total())

	_, err = env.orders.Checkout(ctx, entity.Selection{})
	assert.Error(t, err)
}
