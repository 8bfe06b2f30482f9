package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DipakSrm/style-home-direct/backend"
	"github.com/DipakSrm/style-home-direct/cart"
)

type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

// GET /cart
func GetCart(carts *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")
		state, err := carts.Get(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

// POST /cart
// Fetches the current product document so the cart holds a fresh snapshot of
// price, stock and images at time of add.
func AddItem(api *backend.Client, carts *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := api.Product(c.Request.Context(), input.ProductID)
		if err != nil {
			if errors.Is(err, backend.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to validate product"})
			return
		}

		state, err := carts.AddItem(c.Request.Context(), sessionID, *product)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, state)
	}
}

// PUT /cart/:product_id
// Quantity above the snapshot stock rejects the whole mutation; quantity zero
// removes the item.
func UpdateQuantity(carts *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")
		productID := c.Param("product_id")

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
			return
		}

		state, err := carts.Get(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		stock := -1
		for _, item := range state.Items {
			if item.Product.ID == productID {
				stock = item.Product.Stock
			}
		}
		if stock < 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found in cart"})
			return
		}

		next, err := carts.UpdateQuantity(c.Request.Context(), sessionID, productID, input.Quantity, stock)
		if err != nil {
			if errors.Is(err, cart.ErrStockExceeded) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity exceeds available stock"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, next)
	}
}

// DELETE /cart/:product_id
func RemoveItem(carts *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")
		productID := c.Param("product_id")

		state, err := carts.RemoveItem(c.Request.Context(), sessionID, productID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

// DELETE /cart
func ClearCart(carts *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")
		if err := carts.Clear(c.Request.Context(), sessionID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
