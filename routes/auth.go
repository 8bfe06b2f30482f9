package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/DipakSrm/style-home-direct/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.LoginHandler(deps.Sessions))
		authGroup.POST("/register", auth.RegisterHandler(deps.Sessions))
	}
}
