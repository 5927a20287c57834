package service

import (
	"context"

	"github.com/sangkips/booth-pos/internal/domain/entity"
	"github.com/sangkips/booth-pos/pkg/apperror"
)

// OrderService turns a selection into line items and bills
type OrderService struct {
	productService *ProductService
	billService    *BillService
}

// NewOrderService creates a new order service
func NewOrderService(productService *ProductService, billService *BillService) *OrderService {
	return &OrderService{
		productService: productService,
		billService:    billService,
	}
}

// OrderPreview is the current selection joined with the catalog
type OrderPreview struct {
	Items     []entity.LineItem `json:"items"`
	Total     int64             `json:"total"`
	ItemCount int               `json:"item_count"`
}

// Preview joins the selection with the catalog. Names missing from the catalog are ignored.
func (s *OrderService) Preview(ctx context.Context, selection entity.Selection) *OrderPreview {
	catalog := s.productService.List(ctx)
	items := entity.ToLineItems(catalog, selection)

	count := 0
	for _, item := range items {
		count += item.Qty
	}
	return &OrderPreview{
		Items:     items,
		Total:     entity.ComputeTotal(catalog, selection),
		ItemCount: count,
	}
}

// Checkout creates a bill with a fresh id from the selection
func (s *OrderService) Checkout(ctx context.Context, selection entity.Selection) (*entity.Bill, error) {
	preview := s.Preview(ctx, selection)
	if len(preview.Items) == 0 {
		return nil, apperror.NewBadRequestError("No products selected")
	}
	bill := s.billService.CreateBill(preview.Items, "")
	return &bill, nil
}
