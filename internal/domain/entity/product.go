package entity

import "strings"

// Product represents a sellable catalog item.
// Name is the catalog key; Price is in whole VND.
type Product struct {
	Name  string  `json:"name"`
	Price int64   `json:"price"`
	Image *string `json:"image,omitempty"`
}

// NormalizeName is the comparison form used for catalog uniqueness
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SameName reports whether two names collide in the catalog
func SameName(a, b string) bool {
	return NormalizeName(a) == NormalizeName(b)
}
