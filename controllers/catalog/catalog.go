package catalogControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DipakSrm/style-home-direct/backend"
)

// GET /products
func GetProducts(api *backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := backend.ProductQuery{
			Search:      c.Query("search"),
			Category:    c.Query("category"),
			Subcategory: c.Query("subcategory"),
			Sort:        c.Query("sort"),
		}

		if v := c.Query("min_price"); v != "" {
			p, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			query.MinPrice = p
		}
		if v := c.Query("max_price"); v != "" {
			p, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			query.MaxPrice = p
		}
		if v := c.Query("page"); v != "" {
			query.Page, _ = strconv.Atoi(v)
		}
		if v := c.Query("limit"); v != "" {
			query.Limit, _ = strconv.Atoi(v)
		}
		if v := c.Query("is_featured"); v != "" {
			featured := v == "true"
			query.IsFeatured = &featured
		}
		if v := c.Query("is_trending"); v != "" {
			trending := v == "true"
			query.IsTrending = &trending
		}

		result, err := api.SearchProducts(c.Request.Context(), query)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GET /products/:id
func GetProductByID(api *backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		product, err := api.Product(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, backend.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to retrieve product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GET /categories
func GetCategories(api *backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := api.Categories(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
