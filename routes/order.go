package routes

import (
	"github.com/gin-gonic/gin"

	checkoutControllers "github.com/DipakSrm/style-home-direct/controllers/checkout"
	orderControllers "github.com/DipakSrm/style-home-direct/controllers/order"
	"github.com/DipakSrm/style-home-direct/middleware"
)

func SetupOrderRoutes(r *gin.Engine, deps Deps) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken(deps.JWTSecret))
	{
		// Fetch the caller's orders
		orders.GET("/", orderControllers.GetMyOrders(deps.API))

		// Export order history as a spreadsheet
		orders.GET("/export", orderControllers.ExportOrdersToExcel(deps.API))

		// Fetch a single order
		orders.GET("/:orderID", orderControllers.GetOrderByID(deps.API))

		// websocket endpoint for real-time order status updates
		orders.GET("/:orderID/track", orderControllers.TrackOrder(deps.API, deps.TrackInterval))
	}

	// Checkout converts the session cart into an order
	r.POST("/checkout",
		middleware.SessionID(),
		middleware.ValidateToken(deps.JWTSecret),
		checkoutControllers.Submit(deps.Checkout, deps.Sessions),
	)
}
