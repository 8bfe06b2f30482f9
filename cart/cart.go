package cart

import (
	"errors"

	"github.com/DipakSrm/style-home-direct/models"
)

// ErrStockExceeded rejects a quantity update above the product's known stock.
// The state is left untouched; there is no partial clamp.
var ErrStockExceeded = errors.New("quantity exceeds available stock")

// Empty returns the canonical empty cart state.
func Empty() models.CartState {
	return models.CartState{ID: "", Items: []models.CartItem{}, Total: 0, UpdatedAt: ""}
}

// Each transition below is a pure transform producing a full replacement
// state, so a mutation can never partially apply. Total is recomputed on
// every transition and never drifts from Items.

// AddItem increments the quantity of an existing entry by one, or inserts a
// new entry with quantity 1. Stock is deliberately not checked here: the cart
// is "soft" until checkout, where stock is revalidated against the backend.
func AddItem(state models.CartState, product models.Product) models.CartState {
	items := make([]models.CartItem, 0, len(state.Items)+1)
	found := false
	for _, item := range state.Items {
		if item.Product.ID == product.ID {
			item.Quantity++
			found = true
		}
		items = append(items, item)
	}
	if !found {
		items = append(items, models.CartItem{Product: product, Quantity: 1})
	}
	return replace(state, items)
}

// UpdateQuantity sets the quantity for productID. A quantity above stock
// rejects the whole mutation with ErrStockExceeded; a quantity of zero or
// less removes the item.
func UpdateQuantity(state models.CartState, productID string, quantity, stock int) (models.CartState, error) {
	if quantity > stock {
		return state, ErrStockExceeded
	}
	items := make([]models.CartItem, 0, len(state.Items))
	for _, item := range state.Items {
		if item.Product.ID == productID {
			item.Quantity = quantity
		}
		if item.Quantity > 0 {
			items = append(items, item)
		}
	}
	return replace(state, items), nil
}

// RemoveItem deletes the entry for productID, if present.
func RemoveItem(state models.CartState, productID string) models.CartState {
	items := make([]models.CartItem, 0, len(state.Items))
	for _, item := range state.Items {
		if item.Product.ID != productID {
			items = append(items, item)
		}
	}
	return replace(state, items)
}

func replace(state models.CartState, items []models.CartItem) models.CartState {
	next := state
	next.Items = items
	next.Total = next.Subtotal()
	return next
}
