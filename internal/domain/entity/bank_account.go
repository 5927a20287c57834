package entity

// BankAccount holds the merchant account that parameterizes VietQR images
type BankAccount struct {
	BankCode      string `json:"bank_code"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
}

// WithDefaults fills every empty field from the fallback account
func (a BankAccount) WithDefaults(fallback BankAccount) BankAccount {
	if a.BankCode == "" {
		a.BankCode = fallback.BankCode
	}
	if a.AccountNumber == "" {
		a.AccountNumber = fallback.AccountNumber
	}
	if a.AccountName == "" {
		a.AccountName = fallback.AccountName
	}
	return a
}

// Bank is an entry of the public bank directory used by the bank picker
type Bank struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Logo      string `json:"logo"`
	BIN       string `json:"bin,omitempty"`
}
