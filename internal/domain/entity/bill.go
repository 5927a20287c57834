package entity

// Bill is an identified snapshot of line items awaiting or having completed payment.
// The total is always derived from Products and never stored.
type Bill struct {
	BillID   string     `json:"billId"`
	DateTime string     `json:"dateTime"`
	Products []LineItem `json:"products"`
}

// Total returns sum(qty * price) over the bill's line items
func (b *Bill) Total() int64 {
	var total int64
	for _, item := range b.Products {
		total += item.Subtotal()
	}
	return total
}

// ItemCount returns the number of units on the bill
func (b *Bill) ItemCount() int {
	count := 0
	for _, item := range b.Products {
		count += item.Qty
	}
	return count
}
