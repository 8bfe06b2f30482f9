package checkoutControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DipakSrm/style-home-direct/checkout"
	"github.com/DipakSrm/style-home-direct/middleware"
	"github.com/DipakSrm/style-home-direct/models"
	"github.com/DipakSrm/style-home-direct/session"
)

type SubmitRequest struct {
	ShippingAddress models.ShippingAddress `json:"shipping_address" binding:"required"`
	PaymentMethod   models.PaymentMethod   `json:"payment_method" binding:"required"`
}

// POST /checkout
func Submit(svc *checkout.Service, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		success := false
		defer func() { middleware.RecordCheckoutOperation("submit", success) }()

		token := c.GetString("token")
		sessionID := c.GetString("session_id")

		var req SubmitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.ShippingAddress.Name == "" || req.ShippingAddress.AddressLine == "" ||
			req.ShippingAddress.City == "" || req.ShippingAddress.Phone == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "shipping address is incomplete"})
			return
		}

		sess, err := sessions.Resume(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		result, err := svc.Submit(c.Request.Context(), token, sess.User, sessionID, checkout.Request{
			ShippingAddress: req.ShippingAddress,
			PaymentMethod:   req.PaymentMethod,
		})
		if err != nil {
			var stockErr *checkout.ErrInsufficientStock
			switch {
			case errors.Is(err, checkout.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			case errors.As(err, &stockErr):
				c.JSON(http.StatusConflict, gin.H{"error": stockErr.Error()})
			default:
				c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			}
			return
		}

		success = true
		resp := gin.H{"order": result.Order}
		if result.PaymentURL != "" {
			resp["payment_url"] = result.PaymentURL
		}
		c.JSON(http.StatusCreated, resp)
	}
}
