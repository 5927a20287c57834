package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/booth-pos/internal/application/service"
	"github.com/sangkips/booth-pos/internal/domain/entity"
	"github.com/sangkips/booth-pos/internal/infrastructure/repository"
	"github.com/sangkips/booth-pos/internal/infrastructure/storage"
	"github.com/sangkips/booth-pos/pkg/printer"
	"github.com/sangkips/booth-pos/pkg/vietqr"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	calls int
}

func (f *stubFetcher) FetchImage(ctx context.Context, req vietqr.ImageRequest) (string, error) {
	f.calls++
	return "data:image/png;base64,QR" + strconv.FormatInt(req.Amount, 10), nil
}

type stubBanks struct{}

func (stubBanks) ListBanks(ctx context.Context) ([]vietqr.Bank, error) {
	return []vietqr.Bank{{Code: "VCB", ShortName: "Vietcombank"}}, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

type testServer struct {
	router  *gin.Engine
	fetcher *stubFetcher
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fs := afero.NewMemMapFs()
	store := storage.NewFileStore(fs, "/data/store.json")
	fetcher := &stubFetcher{}

	products := service.NewProductService(repository.NewProductRepository(store), "")
	bills := service.NewBillService(repository.NewBillRepository(store), time.UTC, func() time.Time {
		return time.Date(2026, 10, 17, 9, 15, 0, 0, time.UTC)
	})
	qr := service.NewQRService(repository.NewQRCacheRepository(storage.NewFileDocument(fs, "/data/Cache.json")), fetcher, nil, "")
	settings := service.NewSettingsService(repository.NewSettingsRepository(store), qr, stubBanks{},
		entity.BankAccount{BankCode: "CAKE", AccountNumber: "0862435375", AccountName: "NGUYEN THANH NAM"})
	printers := service.NewPrinterService(printer.NewNullPrinter(), entity.ReceiptHeader{StoreName: "BOOTH"}, 32)

	ph := NewProductHandler(products)
	oh := NewOrderHandler(service.NewOrderService(products, bills))
	bh := NewBillHandler(bills)
	qh := NewQRHandler(qr, settings)
	sh := NewSettingsHandler(settings)
	prh := NewPrinterHandler(printers)

	r := gin.New()
	r.GET("/products", ph.List)
	r.POST("/products", ph.Create)
	r.GET("/products/export", ph.Export)
	r.PUT("/products/:name", ph.Update)
	r.DELETE("/products/:name", ph.Delete)
	r.POST("/orders/preview", oh.Preview)
	r.POST("/orders/checkout", oh.Checkout)
	r.POST("/bills", bh.Create)
	r.GET("/bills/incomplete", bh.ListIncomplete)
	r.GET("/bills/incomplete/:id", bh.GetIncomplete)
	r.POST("/bills/incomplete", bh.MarkIncomplete)
	r.POST("/bills/paid", bh.MarkPaid)
	r.POST("/bills/print", prh.PrintBill)
	r.POST("/qr", qh.Request)
	r.POST("/qr/bulk", qh.Bulk)
	r.GET("/qr/cache", qh.List)
	r.DELETE("/qr/cache", qh.Clear)
	r.DELETE("/qr/cache/index/:index", qh.DeleteIndex)
	r.DELETE("/qr/cache/:amount", qh.DeleteAmount)
	r.GET("/settings/bank", sh.GetBankAccount)
	r.PUT("/settings/bank", sh.UpdateBankAccount)
	r.GET("/banks", sh.ListBanks)
	r.GET("/printer/status", prh.GetStatus)
	r.POST("/printer/test", prh.TestPrint)

	return &testServer{router: r, fetcher: fetcher}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestProductEndpoints(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodPost, "/products", gin.H{"name": "Latte", "price": 40000})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)

	w, _ = s.do(t, http.MethodPost, "/products", gin.H{"name": " latte ", "price": 1})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, env = s.do(t, http.MethodPost, "/products", gin.H{"name": "Mocha"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, env.Success)

	w, _ = s.do(t, http.MethodPut, "/products/Latte", gin.H{"name": "Latte", "price": 42000})
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = s.do(t, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var products []entity.Product
	require.NoError(t, json.Unmarshal(env.Data, &products))
	assert.Equal(t, []entity.Product{{Name: "Latte", Price: 42000}}, products)

	w, _ = s.do(t, http.MethodGet, "/products/export", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")

	w, _ = s.do(t, http.MethodDelete, "/products/Latte", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(t, http.MethodDelete, "/products/Latte", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOrderAndBillEndpoints(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodPost, "/products", gin.H{"name": "Latte", "price": 40000})
	s.do(t, http.MethodPost, "/products", gin.H{"name": "Mocha", "price": 45000})

	w, env := s.do(t, http.MethodPost, "/orders/preview", gin.H{"selection": gin.H{"Latte": 2, "Mocha": 0}})
	require.Equal(t, http.StatusOK, w.Code)
	var preview service.OrderPreview
	require.NoError(t, json.Unmarshal(env.Data, &preview))
	assert.Equal(t, int64(80000), preview.Total)
	assert.Len(t, preview.Items, 1)

	w, _ = s.do(t, http.MethodPost, "/orders/checkout", gin.H{"selection": gin.H{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = s.do(t, http.MethodPost, "/orders/checkout", gin.H{"selection": gin.H{"Latte": 1, "Mocha": 1}})
	require.Equal(t, http.StatusCreated, w.Code)
	var bill struct {
		BillID   string            `json:"billId"`
		DateTime string            `json:"dateTime"`
		Products []entity.LineItem `json:"products"`
		Total    int64             `json:"total"`
		Status   string            `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &bill))
	assert.Regexp(t, `^HD\d{6}$`, bill.BillID)
	assert.Equal(t, "09:15 17/10/2026", bill.DateTime)
	assert.Equal(t, int64(85000), bill.Total)
	assert.Equal(t, "Open", bill.Status)

	payload := gin.H{"billId": bill.BillID, "dateTime": bill.DateTime, "products": bill.Products}
	w, _ = s.do(t, http.MethodPost, "/bills/incomplete", payload)
	require.Equal(t, http.StatusOK, w.Code)
	w, env = s.do(t, http.MethodPost, "/bills/incomplete", payload)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bill is already incomplete", env.Message)

	w, env = s.do(t, http.MethodGet, "/bills/incomplete", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Incomplete", list[0]["status"])

	w, _ = s.do(t, http.MethodGet, "/bills/incomplete/"+bill.BillID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// resuming keeps the id
	w, env = s.do(t, http.MethodPost, "/bills", gin.H{"billId": bill.BillID, "products": bill.Products})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, string(env.Data), bill.BillID)

	w, _ = s.do(t, http.MethodPost, "/bills/print", gin.H{"bill": payload})
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = s.do(t, http.MethodPost, "/bills/paid", gin.H{"billId": bill.BillID})
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(t, http.MethodGet, "/bills/incomplete/"+bill.BillID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQREndpoints(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodPost, "/qr", gin.H{"billId": "HD000001", "amount": 45000})
	require.Equal(t, http.StatusOK, w.Code)
	var img service.QRImage
	require.NoError(t, json.Unmarshal(env.Data, &img))
	assert.False(t, img.Cached)

	w, env = s.do(t, http.MethodPost, "/qr", gin.H{"billId": "HD000002", "amount": 45000})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &img))
	assert.True(t, img.Cached)
	assert.Equal(t, 1, s.fetcher.calls)

	w, _ = s.do(t, http.MethodPost, "/qr", gin.H{"amount": 0})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w, env = s.do(t, http.MethodPost, "/qr/bulk", gin.H{"start": "abc", "end": "1", "step": "1"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.NotEmpty(t, env.Errors)

	w, env = s.do(t, http.MethodPost, "/qr/bulk", gin.H{"start": "10000", "end": "50000", "step": "10000"})
	require.Equal(t, http.StatusOK, w.Code)
	var result service.BulkResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Len(t, result.Generated, 5)

	w, env = s.do(t, http.MethodGet, "/qr/cache", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listing struct {
		Count   int               `json:"count"`
		Entries []entity.QREntry `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &listing))
	assert.Equal(t, 6, listing.Count)
	assert.Equal(t, int64(10000), listing.Entries[0].Amount)
	assert.Empty(t, listing.Entries[0].Image)

	_, env = s.do(t, http.MethodGet, "/qr/cache?page=2&per_page=4", nil)
	var paged struct {
		Count      int               `json:"count"`
		Entries    []entity.QREntry `json:"entries"`
		Pagination struct {
			TotalPages int  `json:"total_pages"`
			HasPrev    bool `json:"has_prev"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &paged))
	assert.Equal(t, 6, paged.Count)
	assert.Len(t, paged.Entries, 2)
	assert.Equal(t, 2, paged.Pagination.TotalPages)
	assert.True(t, paged.Pagination.HasPrev)

	w, _ = s.do(t, http.MethodDelete, "/qr/cache/index/0", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(t, http.MethodDelete, "/qr/cache/45000", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(t, http.MethodDelete, "/qr/cache/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = s.do(t, http.MethodDelete, "/qr/cache/index/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = s.do(t, http.MethodGet, "/qr/cache", nil)
	require.NoError(t, json.Unmarshal(env.Data, &listing))
	assert.Equal(t, 4, listing.Count)

	w, _ = s.do(t, http.MethodDelete, "/qr/cache", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	_, env = s.do(t, http.MethodGet, "/qr/cache", nil)
	require.NoError(t, json.Unmarshal(env.Data, &listing))
	assert.Zero(t, listing.Count)
}

func TestSettingsEndpoints(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodGet, "/settings/bank", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var account entity.BankAccount
	require.NoError(t, json.Unmarshal(env.Data, &account))
	assert.Equal(t, "CAKE", account.BankCode)

	s.do(t, http.MethodPost, "/qr", gin.H{"amount": 10000})

	w, _ = s.do(t, http.MethodPut, "/settings/bank", gin.H{"bank_code": "VCB", "account_number": "0011", "account_name": "TRAN VAN A"})
	require.Equal(t, http.StatusOK, w.Code)

	_, env = s.do(t, http.MethodGet, "/qr/cache", nil)
	assert.Contains(t, string(env.Data), `"count":0`)

	w, _ = s.do(t, http.MethodPut, "/settings/bank", gin.H{"bank_code": "VCB"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w, env = s.do(t, http.MethodGet, "/banks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "Vietcombank")
}

func TestPrinterEndpoints(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodGet, "/printer/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"type":"none"`)

	w, _ = s.do(t, http.MethodPost, "/printer/test", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
