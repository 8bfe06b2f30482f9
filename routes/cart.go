package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/DipakSrm/style-home-direct/controllers/cart"
	"github.com/DipakSrm/style-home-direct/middleware"
)

// SetupCartRoutes registers the "/cart/*" endpoints. The cart exists before
// login, so these are keyed by session id rather than gated on a token.
func SetupCartRoutes(r *gin.Engine, deps Deps) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.SessionID())
	{
		cartGroup.GET("/", cartControllers.GetCart(deps.Carts))                         // GET /cart
		cartGroup.POST("/", cartControllers.AddItem(deps.API, deps.Carts))              // POST /cart
		cartGroup.PUT("/:product_id", cartControllers.UpdateQuantity(deps.Carts))       // PUT /cart/:product_id
		cartGroup.DELETE("/:product_id", cartControllers.RemoveItem(deps.Carts))        // DELETE /cart/:product_id
		cartGroup.DELETE("/", cartControllers.ClearCart(deps.Carts))                    // DELETE /cart
	}
}
