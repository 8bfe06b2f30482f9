package models

// CartItem pins a product snapshot (price, stock, images at time of add) to a
// quantity. Keyed by product id; at most one entry per product.
type CartItem struct {
	Product  Product `json:"productId"`
	Quantity int     `json:"quantity"`
}

// CartState is the session-owned pre-purchase state. Total is always derived
// from Items; there is no mutation path that writes Total independently.
// UpdatedAt is an RFC3339 string so the canonical empty state can carry "".
type CartState struct {
	ID        string     `json:"_id"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	UpdatedAt string     `json:"updatedAt"`
}

// Subtotal recomputes the pre-tax sum of price x quantity over all items.
func (s CartState) Subtotal() float64 {
	var sum float64
	for _, item := range s.Items {
		sum += item.Product.Price * float64(item.Quantity)
	}
	return sum
}
