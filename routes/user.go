package routes

import (
	"github.com/gin-gonic/gin"

	userControllers "github.com/DipakSrm/style-home-direct/controllers/user"
	"github.com/DipakSrm/style-home-direct/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(deps.JWTSecret))
	{
		userGroup.GET("/", userControllers.GetUser(deps.Sessions))  // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(deps.API))    // PUT /user/

		addressGroup := userGroup.Group("/addresses")
		{
			addressGroup.GET("/", userControllers.GetAddresses(deps.API))       // GET /user/addresses
			addressGroup.POST("/", userControllers.CreateAddress(deps.API))     // POST /user/addresses
			addressGroup.PUT("/:id", userControllers.UpdateAddress(deps.API))   // PUT /user/addresses/:id
		}
	}
}
