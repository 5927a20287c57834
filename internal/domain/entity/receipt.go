package entity

// ReceiptHeader holds the shop header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Total     int64  `json:"total"`
}

// Receipt is a printable view of a bill, composed at print time and never stored.
type Receipt struct {
	Header   ReceiptHeader `json:"header"`
	Title    string        `json:"title"`
	BillID   string        `json:"bill_id"`
	Date     string        `json:"date"`
	Items    []ReceiptItem `json:"items"`
	SubTotal int64         `json:"sub_total"`
	VAT      int64         `json:"vat"`
	Total    int64         `json:"total"`
}

// NewReceipt builds the printable view of a bill
func NewReceipt(header ReceiptHeader, bill *Bill) *Receipt {
	r := &Receipt{
		Header: header,
		Title:  "HOA DON THANH TOAN",
		BillID: bill.BillID,
		Date:   bill.DateTime,
		Items:  make([]ReceiptItem, 0, len(bill.Products)),
	}
	for _, item := range bill.Products {
		r.Items = append(r.Items, ReceiptItem{
			Name:      item.Name,
			Quantity:  item.Qty,
			UnitPrice: item.Price,
			Total:     item.Subtotal(),
		})
	}
	r.SubTotal = bill.Total()
	r.Total = r.SubTotal + r.VAT
	return r
}
