package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DipakSrm/style-home-direct/backend"
)

// GET /orders
func GetMyOrders(api *backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetString("token")
		orders, err := api.MyOrders(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, backend.ErrUnauthorized) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderID
func GetOrderByID(api *backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		token := c.GetString("token")
		order, err := api.Order(c.Request.Context(), token, orderID)
		if err != nil {
			switch {
			case errors.Is(err, backend.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			case errors.Is(err, backend.ErrUnauthorized):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			default:
				c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch order"})
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
