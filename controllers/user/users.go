package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DipakSrm/style-home-direct/backend"
	"github.com/DipakSrm/style-home-direct/session"
)

type UpdateUserInput struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// GET /user
func GetUser(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetString("token")

		sess, err := sessions.Resume(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, backend.ErrUnauthorized) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch profile"})
			return
		}
		c.JSON(http.StatusOK, sess.User)
	}
}

// PUT /user
func UpdateUser(api *backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetString("token")
		userID := c.GetString("user_id")

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := api.UpdateProfile(c.Request.Context(), token, userID, backend.ProfileUpdate{
			Name:  input.Name,
			Phone: input.Phone,
		})
		if err != nil {
			if errors.Is(err, backend.ErrUnauthorized) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to update user"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// GET /user/addresses
func GetAddresses(api *backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetString("token")
		addresses, err := api.Addresses(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch addresses"})
			return
		}
		c.JSON(http.StatusOK, addresses)
	}
}

// POST /user/addresses
func CreateAddress(api *backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetString("token")

		var input backend.AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		address, err := api.CreateAddress(c.Request.Context(), token, input)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create address"})
			return
		}
		c.JSON(http.StatusCreated, address)
	}
}

// PUT /user/addresses/:id
func UpdateAddress(api *backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetString("token")
		addressID := c.Param("id")

		var input backend.AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		address, err := api.UpdateAddress(c.Request.Context(), token, addressID, input)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to update address"})
			return
		}
		c.JSON(http.StatusOK, address)
	}
}
