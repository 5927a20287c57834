package request

// LineItemRequest is one bill line
type LineItemRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price int64   `json:"price" binding:"min=0"`
	Qty   int     `json:"qty" binding:"required,min=1"`
	Image *string `json:"image"`
}

// CreateBillRequest creates a bill from line items.
// BillID is set when resuming an incomplete bill.
type CreateBillRequest struct {
	BillID   string            `json:"billId"`
	Products []LineItemRequest `json:"products" binding:"required,min=1,dive"`
}

// BillRequest carries a full bill snapshot
type BillRequest struct {
	BillID   string            `json:"billId" binding:"required"`
	DateTime string            `json:"dateTime"`
	Products []LineItemRequest `json:"products" binding:"dive"`
}

// PayBillRequest marks a bill as paid by id
type PayBillRequest struct {
	BillID string `json:"billId" binding:"required"`
}
