// order_web_socket.go
package orderControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/DipakSrm/style-home-direct/backend"
	"github.com/DipakSrm/style-home-direct/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type orderUpdate struct {
	OrderID       string               `json:"order_id"`
	Status        models.OrderStatus   `json:"status"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`
}

// GET /orders/:orderID/track
// Polls the backend for the order and pushes status transitions to the
// client. Closes once the order reaches a terminal status.
func TrackOrder(api *backend.Client, interval time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		token := c.GetString("token")

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		// Drain the read side so client closes are noticed.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		var lastStatus models.OrderStatus
		var lastPayment models.PaymentStatus
		for {
			order, err := api.Order(c.Request.Context(), token, orderID)
			if err != nil {
				conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "order unavailable"))
				return
			}

			if order.Status != lastStatus || order.PaymentStatus != lastPayment {
				lastStatus, lastPayment = order.Status, order.PaymentStatus
				update := orderUpdate{OrderID: order.ID, Status: order.Status, PaymentStatus: order.PaymentStatus}
				if err := conn.WriteJSON(update); err != nil {
					return
				}
			}

			if order.Status.Terminal() {
				conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "order finished"))
				return
			}

			select {
			case <-ticker.C:
			case <-done:
				return
			case <-c.Request.Context().Done():
				return
			}
		}
	}
}
