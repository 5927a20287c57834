package entity

// Selection maps a product name to the quantity picked while building an order.
// Stored quantities are always >= 1; a quantity that drops to zero is removed.
type Selection map[string]int

// Increase adds one unit of the named product
func (s Selection) Increase(name string) {
	s[name]++
}

// Decrease removes one unit of the named product, dropping the entry at zero.
// Decreasing an absent product is a no-op.
func (s Selection) Decrease(name string) {
	qty, ok := s[name]
	if !ok {
		return
	}
	if qty > 1 {
		s[name] = qty - 1
		return
	}
	delete(s, name)
}

// Qty returns the selected quantity, zero when absent
func (s Selection) Qty(name string) int {
	return s[name]
}

// IsEmpty reports whether nothing is selected
func (s Selection) IsEmpty() bool {
	return len(s) == 0
}

// LineItem is a catalog product joined with its selected quantity
type LineItem struct {
	Name  string  `json:"name"`
	Price int64   `json:"price"`
	Qty   int     `json:"qty"`
	Image *string `json:"image,omitempty"`
}

// Subtotal returns qty * price
func (li LineItem) Subtotal() int64 {
	return int64(li.Qty) * li.Price
}

// ComputeTotal sums selection[name] * price over the catalog
func ComputeTotal(catalog []Product, selection Selection) int64 {
	var total int64
	for _, p := range catalog {
		if qty := selection.Qty(p.Name); qty > 0 {
			total += int64(qty) * p.Price
		}
	}
	return total
}

// ToLineItems filters the catalog down to selected products, in catalog order
func ToLineItems(catalog []Product, selection Selection) []LineItem {
	items := make([]LineItem, 0, len(selection))
	for _, p := range catalog {
		qty := selection.Qty(p.Name)
		if qty <= 0 {
			continue
		}
		items = append(items, LineItem{
			Name:  p.Name,
			Price: p.Price,
			Qty:   qty,
			Image: p.Image,
		})
	}
	return items
}
