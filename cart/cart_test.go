package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DipakSrm/style-home-direct/models"
)

func product(id string, price float64, stock int) models.Product {
	return models.Product{ID: id, Name: "Product " + id, Price: price, Stock: stock}
}

func totalOf(items []models.CartItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Product.Price * float64(item.Quantity)
	}
	return sum
}

func TestAddItem_NewEntry(t *testing.T) {
	state := AddItem(Empty(), product("p1", 100, 5))

	require.Len(t, state.Items, 1)
	assert.Equal(t, 1, state.Items[0].Quantity)
	assert.Equal(t, 100.0, state.Total)
}

func TestAddItem_IncrementsExisting(t *testing.T) {
	state := AddItem(Empty(), product("p1", 100, 5))
	state = AddItem(state, product("p1", 100, 5))

	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Quantity)
	assert.Equal(t, 200.0, state.Total)
}

func TestAddItem_NoStockCheck(t *testing.T) {
	// Adds are deliberately soft; stock is only enforced on quantity updates
	// and at checkout.
	state := Empty()
	for i := 0; i < 4; i++ {
		state = AddItem(state, product("p1", 50, 2))
	}

	require.Len(t, state.Items, 1)
	assert.Equal(t, 4, state.Items[0].Quantity)
}

func TestUpdateQuantity_SetsQuantity(t *testing.T) {
	state := AddItem(Empty(), product("p1", 100, 5))

	next, err := UpdateQuantity(state, "p1", 3, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, next.Items[0].Quantity)
	assert.Equal(t, 300.0, next.Total)
}

func TestUpdateQuantity_ExceedsStock(t *testing.T) {
	state := AddItem(Empty(), product("p1", 100, 5))

	next, err := UpdateQuantity(state, "p1", 6, 5)
	assert.ErrorIs(t, err, ErrStockExceeded)
	// the whole mutation is rejected, no partial clamp
	assert.Equal(t, state, next)
}

func TestUpdateQuantity_ZeroRemovesItem(t *testing.T) {
	state := AddItem(Empty(), product("p1", 100, 5))
	state = AddItem(state, product("p2", 40, 3))

	next, err := UpdateQuantity(state, "p1", 0, 5)
	require.NoError(t, err)
	require.Len(t, next.Items, 1)
	assert.Equal(t, "p2", next.Items[0].Product.ID)
	assert.Equal(t, 40.0, next.Total)
}

func TestRemoveItem(t *testing.T) {
	state := AddItem(Empty(), product("p1", 100, 5))
	state = AddItem(state, product("p2", 40, 3))

	next := RemoveItem(state, "p1")
	require.Len(t, next.Items, 1)
	assert.Equal(t, 40.0, next.Total)

	// removing an absent id is a no-op
	same := RemoveItem(next, "p1")
	assert.Equal(t, next, same)
}

func TestTotal_NeverDrifts(t *testing.T) {
	// total must equal the derived sum after every step of any sequence
	state := Empty()
	check := func() {
		assert.Equal(t, totalOf(state.Items), state.Total)
	}

	state = AddItem(state, product("p1", 19.99, 10))
	check()
	state = AddItem(state, product("p2", 5, 10))
	check()
	state = AddItem(state, product("p1", 19.99, 10))
	check()

	var err error
	state, err = UpdateQuantity(state, "p2", 7, 10)
	require.NoError(t, err)
	check()

	state, err = UpdateQuantity(state, "p1", 100, 10)
	assert.ErrorIs(t, err, ErrStockExceeded)
	check()

	state = RemoveItem(state, "p2")
	check()

	state, err = UpdateQuantity(state, "p1", 0, 10)
	require.NoError(t, err)
	check()
	assert.Empty(t, state.Items)
	assert.Zero(t, state.Total)
}

func TestEmpty_CanonicalState(t *testing.T) {
	state := Empty()
	assert.Equal(t, "", state.ID)
	assert.NotNil(t, state.Items)
	assert.Empty(t, state.Items)
	assert.Zero(t, state.Total)
	assert.Equal(t, "", state.UpdatedAt)
}
