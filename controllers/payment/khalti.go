package paymentControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DipakSrm/style-home-direct/middleware"
	"github.com/DipakSrm/style-home-direct/models"
	"github.com/DipakSrm/style-home-direct/payment"
)

// GET /payment/khalti/callback
// The wallet provider redirects here after the payment page. Reconciliation
// runs once per request and only when a pidx is present.
func KhaltiCallback(reconciler *payment.Reconciler) gin.HandlerFunc {
	return func(c *gin.Context) {
		success := false
		defer func() { middleware.RecordCheckoutOperation("confirm", success) }()

		params := payment.ParseCallback(c.Request.URL.Query())
		if params.Pidx == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing pidx"})
			return
		}

		token := c.GetString("token")
		sessionID := c.GetString("session_id")

		outcome, err := reconciler.Confirm(c.Request.Context(), token, sessionID, params)
		if err != nil {
			if errors.Is(err, payment.ErrVerification) {
				c.JSON(http.StatusBadGateway, gin.H{"error": "Payment verification failed", "data": outcome})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		success = outcome.Status == models.PaymentStatusCompleted
		c.JSON(http.StatusOK, gin.H{"data": outcome})
	}
}
