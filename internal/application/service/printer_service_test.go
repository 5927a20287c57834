package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sangkips/booth-pos/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPrinter struct {
	jobs [][]byte
	err  error
}

func (p *recordingPrinter) Print(ctx context.Context, data []byte) error {
	if p.err != nil {
		return p.err
	}
	p.jobs = append(p.jobs, append([]byte(nil), data...))
	return nil
}

func (p *recordingPrinter) IsConnected(ctx context.Context) bool { return p.err == nil }
func (p *recordingPrinter) Kind() string                         { return "network" }

var testHeader = entity.ReceiptHeader{
	StoreName: "BOOTH CIRCLE K",
	Address:   "160 Bùi Thị Xuân, Q.1, Tp.HCM, Việt Nam",
	Phone:     "+84 (28) 3620 9017",
}

func TestPrinterService_PrintBill(t *testing.T) {
	p := &recordingPrinter{}
	svc := NewPrinterService(p, testHeader, 32)

	bill := &entity.Bill{BillID: "HD123456", DateTime: "14:30 17/10/2026", Products: sampleItems()}
	receipt, err := svc.PrintBill(context.Background(), bill)
	require.NoError(t, err)

	assert.Equal(t, int64(95000), receipt.SubTotal)
	assert.Equal(t, int64(0), receipt.VAT)
	assert.Equal(t, int64(95000), receipt.Total)
	require.Len(t, receipt.Items, 2)
	assert.Equal(t, int64(80000), receipt.Items[0].Total)

	require.Len(t, p.jobs, 1)
	job := p.jobs[0]
	assert.True(t, bytes.Contains(job, []byte("160 Bui Thi Xuan")))
	assert.True(t, bytes.Contains(job, []byte("HD123456")))
	assert.True(t, bytes.Contains(job, []byte("95.000d")))
	assert.True(t, bytes.Contains(job, []byte("Banh flan")))
}

func TestPrinterService_PrintFailureStillReturnsReceipt(t *testing.T) {
	svc := NewPrinterService(&recordingPrinter{err: errors.New("paper out")}, testHeader, 32)

	receipt, err := svc.PrintBill(context.Background(), &entity.Bill{BillID: "HD000001", Products: sampleItems()})
	assert.Error(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, "HD000001", receipt.BillID)
}

func TestPrinterService_Status(t *testing.T) {
	svc := NewPrinterService(&recordingPrinter{}, testHeader, 48)

	status := svc.GetStatus(context.Background())
	assert.True(t, status.Configured)
	assert.True(t, status.Connected)
	assert.Equal(t, "network", status.Type)

	receipt, err := svc.TestPrint(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(70000), receipt.Total)
}
