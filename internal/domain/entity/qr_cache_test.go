package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCache_AscendingEnumeration(t *testing.T) {
	cache := QRCache{50000: "e", 10000: "a", 25000: "c"}

	assert.Equal(t, []int64{10000, 25000, 50000}, cache.Amounts())
	assert.Equal(t, []QREntry{{Amount: 10000}, {Amount: 25000}, {Amount: 50000}}, cache.Entries(false))
	assert.Equal(t, "c", cache.Entries(true)[1].Image)
}

func TestQRCache_JSONKeyedByDecimalAmount(t *testing.T) {
	data, err := json.Marshal(QRCache{45000: "data:image/png;base64,AA=="})
	require.NoError(t, err)
	assert.JSONEq(t, `{"45000":"data:image/png;base64,AA=="}`, string(data))

	var decoded QRCache
	require.NoError(t, json.Unmarshal([]byte(`{"10000":"x","20000":"y"}`), &decoded))
	assert.Equal(t, QRCache{10000: "x", 20000: "y"}, decoded)
}

func TestBankAccount_WithDefaults(t *testing.T) {
	fallback := BankAccount{BankCode: "CAKE", AccountNumber: "0862435375", AccountName: "NGUYEN THANH NAM"}

	assert.Equal(t, fallback, BankAccount{}.WithDefaults(fallback))
	assert.Equal(t,
		BankAccount{BankCode: "VCB", AccountNumber: "0862435375", AccountName: "NGUYEN THANH NAM"},
		BankAccount{BankCode: "VCB"}.WithDefaults(fallback),
	)
}
