package service

import (
	"context"
	"fmt"

	"github.com/sangkips/booth-pos/internal/domain/entity"
	"github.com/sangkips/booth-pos/pkg/logger"
	"github.com/sangkips/booth-pos/pkg/printer"
	"github.com/sirupsen/logrus"
)

// PrinterService formats bills as receipts and sends them to the thermal printer.
type PrinterService struct {
	printer   printer.Printer
	header    entity.ReceiptHeader
	charWidth int
	log       *logrus.Entry
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, header entity.ReceiptHeader, charWidth int) *PrinterService {
	return &PrinterService{
		printer:   p,
		header:    header,
		charWidth: charWidth,
		log:       logger.WithComponent("printer_service"),
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus(ctx context.Context) *PrinterStatus {
	kind := s.printer.Kind()
	return &PrinterStatus{
		Configured: kind != "none",
		Connected:  s.printer.IsConnected(ctx),
		Type:       kind,
	}
}

// TestPrint sends a sample receipt.
// The receipt is returned even when printing fails so callers can show it.
func (s *PrinterService) TestPrint(ctx context.Context) (*entity.Receipt, error) {
	bill := &entity.Bill{
		BillID:   "HD000000",
		DateTime: "00:00 01/01/2000",
		Products: []entity.LineItem{
			{Name: "Cà phê sữa", Price: 25000, Qty: 2},
			{Name: "Bánh mì", Price: 20000, Qty: 1},
		},
	}
	receipt := entity.NewReceipt(s.header, bill)

	if err := s.printer.Print(ctx, s.FormatReceipt(receipt)); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}
	return receipt, nil
}

// PrintBill prints a bill receipt.
// The receipt is returned even when printing fails so callers can show it.
func (s *PrinterService) PrintBill(ctx context.Context, bill *entity.Bill) (*entity.Receipt, error) {
	receipt := entity.NewReceipt(s.header, bill)

	if err := s.printer.Print(ctx, s.FormatReceipt(receipt)); err != nil {
		s.log.WithError(err).WithField("bill_id", bill.BillID).Error("printer error")
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}
	return receipt, nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func (s *PrinterService) FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(s.charWidth)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)
	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text("Tel: " + r.Header.Phone)
	}

	doc.LineFeed().
		SetBold(true).
		Text(r.Title).
		SetBold(false).
		SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("So HD:", r.BillID).
		KeyValue("Ngay:", r.Date).
		Separator('-')

	for _, item := range r.Items {
		doc.ItemLine(item.Name, item.Quantity, item.UnitPrice, item.Total)
	}

	doc.Separator('-').
		KeyValue("Tam tinh:", printer.FormatVND(r.SubTotal)).
		KeyValue("VAT (0%):", printer.FormatVND(r.VAT)).
		SetBold(true).
		KeyValue("TONG CONG:", printer.FormatVND(r.Total)).
		SetBold(false).
		Separator('-')

	doc.SetAlign(printer.AlignCenter).
		Text("Cam on quy khach!").
		SetAlign(printer.AlignLeft).
		FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
