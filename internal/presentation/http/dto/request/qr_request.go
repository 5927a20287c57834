package request

// QRRequest asks for the payment QR of one amount
type QRRequest struct {
	BillID string `json:"billId"`
	Amount int64  `json:"amount"`
}

// BulkQRRequest pre-generates QR images for a range of amounts.
// Values arrive as text, as typed into the range form.
type BulkQRRequest struct {
	BillID string `json:"billId"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Step   string `json:"step"`
}
