package response

import (
	"github.com/sangkips/booth-pos/internal/domain/entity"
	"github.com/sangkips/booth-pos/internal/domain/enum"
)

// BillResponse is a bill with its derived total
type BillResponse struct {
	BillID    string            `json:"billId"`
	DateTime  string            `json:"dateTime"`
	Products  []entity.LineItem `json:"products"`
	Total     int64             `json:"total"`
	ItemCount int               `json:"item_count"`
	Status    enum.BillStatus   `json:"status"`
}

// NewBillResponse builds the response for a bill in the given state
func NewBillResponse(bill *entity.Bill, status enum.BillStatus) BillResponse {
	products := bill.Products
	if products == nil {
		products = []entity.LineItem{}
	}
	return BillResponse{
		BillID:    bill.BillID,
		DateTime:  bill.DateTime,
		Products:  products,
		Total:     bill.Total(),
		ItemCount: bill.ItemCount(),
		Status:    status,
	}
}

// NewBillListResponse builds responses for bills sharing one state
func NewBillListResponse(bills []entity.Bill, status enum.BillStatus) []BillResponse {
	out := make([]BillResponse, 0, len(bills))
	for i := range bills {
		out = append(out, NewBillResponse(&bills[i], status))
	}
	return out
}
