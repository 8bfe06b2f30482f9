package routes

import (
	"github.com/gin-gonic/gin"

	catalogControllers "github.com/DipakSrm/style-home-direct/controllers/catalog"
)

// SetupCatalogRoutes registers the public browsing endpoints.
func SetupCatalogRoutes(r *gin.Engine, deps Deps) {
	r.GET("/products", catalogControllers.GetProducts(deps.API))        // GET /products
	r.GET("/products/:id", catalogControllers.GetProductByID(deps.API)) // GET /products/:id
	r.GET("/categories", catalogControllers.GetCategories(deps.API))    // GET /categories
}
