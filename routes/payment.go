package routes

import (
	"github.com/gin-gonic/gin"

	paymentControllers "github.com/DipakSrm/style-home-direct/controllers/payment"
	"github.com/DipakSrm/style-home-direct/middleware"
)

func SetupPaymentRoutes(r *gin.Engine, deps Deps) {
	payment := r.Group("/payment")
	{
		// Return URL the wallet provider redirects to after payment
		payment.GET("/khalti/callback",
			middleware.SessionID(),
			middleware.ValidateToken(deps.JWTSecret),
			paymentControllers.KhaltiCallback(deps.Reconciler),
		)
	}
}
