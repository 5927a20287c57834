package request

// BankAccountRequest updates the merchant bank account
type BankAccountRequest struct {
	BankCode      string `json:"bank_code" binding:"required,max=32"`
	AccountNumber string `json:"account_number" binding:"required,max=64"`
	AccountName   string `json:"account_name" binding:"required,max=255"`
}
