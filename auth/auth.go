package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DipakSrm/style-home-direct/backend"
	"github.com/DipakSrm/style-home-direct/session"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

// POST /auth/login
func LoginHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		sess, err := sessions.Login(c.Request.Context(), input.Email, input.Password)
		if err != nil {
			var apiErr *backend.APIError
			if errors.As(err, &apiErr) && apiErr.Status < 500 {
				c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
				return
			}
			if errors.Is(err, backend.ErrUnauthorized) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "Login failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": sess.Token, "user": sess.User})
	}
}

// POST /auth/register
func RegisterHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		sess, err := sessions.Register(c.Request.Context(), backend.RegisterRequest{
			Name:     input.Name,
			Email:    input.Email,
			Password: input.Password,
			Phone:    input.Phone,
		})
		if err != nil {
			var apiErr *backend.APIError
			if errors.As(err, &apiErr) && apiErr.Status < 500 {
				c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "Registration failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"token": sess.Token, "user": sess.User})
	}
}
