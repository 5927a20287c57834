package repository

// Keys of the documents held in the local key-value store
const (
	KeyProducts          = "products"
	KeyIncompleteBills   = "incompleteBills"
	KeyBankCode          = "vietqr_bankCode"
	KeyBankAccountNumber = "vietqr_accountNumber"
	KeyBankAccountName   = "vietqr_accountName"
	KeyQRCache           = "qrCache"
)
