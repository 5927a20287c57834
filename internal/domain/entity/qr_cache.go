package entity

import "sort"

// QRCache maps a payment amount (VND) to a self-contained QR image data URI.
// It is persisted as a JSON object keyed by the decimal amount.
type QRCache map[int64]string

// QREntry is one cache mapping, exposed in enumeration order
type QREntry struct {
	Amount int64  `json:"amount"`
	Image  string `json:"image,omitempty"`
}

// Amounts returns cached amounts in ascending order.
// This is the enumeration order used for index-based removal.
func (c QRCache) Amounts() []int64 {
	amounts := make([]int64, 0, len(c))
	for amount := range c {
		amounts = append(amounts, amount)
	}
	sort.Slice(amounts, func(i, j int) bool { return amounts[i] < amounts[j] })
	return amounts
}

// Entries returns the cache as a slice in ascending amount order
func (c QRCache) Entries(withImages bool) []QREntry {
	amounts := c.Amounts()
	entries := make([]QREntry, len(amounts))
	for i, amount := range amounts {
		entries[i] = QREntry{Amount: amount}
		if withImages {
			entries[i].Image = c[amount]
		}
	}
	return entries
}
