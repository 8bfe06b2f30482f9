package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DipakSrm/style-home-direct/backend"
	"github.com/DipakSrm/style-home-direct/cart"
	"github.com/DipakSrm/style-home-direct/checkout"
	"github.com/DipakSrm/style-home-direct/payment"
	"github.com/DipakSrm/style-home-direct/session"
)

// Deps bundles the injectable state containers the handlers close over.
type Deps struct {
	API           *backend.Client
	Carts         *cart.Service
	Checkout      *checkout.Service
	Reconciler    *payment.Reconciler
	Sessions      *session.Manager
	JWTSecret     string
	TrackInterval time.Duration
}

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// Public catalog browsing
	SetupCatalogRoutes(r, deps)

	// Session-keyed cart routes
	SetupCartRoutes(r, deps)

	// JWT-protected profile routes
	SetupUserRoutes(r, deps)

	// JWT-protected orders, checkout and tracking
	SetupOrderRoutes(r, deps)

	// Khalti payment callback
	SetupPaymentRoutes(r, deps)
}
