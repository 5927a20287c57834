package request

// PrintBillRequest prints a receipt for a bill snapshot
type PrintBillRequest struct {
	Bill BillRequest `json:"bill"`
}
