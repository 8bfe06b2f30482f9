package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

type capturedAuth struct {
	userID string
	token  string
}

func authRouter(captured *capturedAuth) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", ValidateToken(testSecret), func(c *gin.Context) {
		captured.userID = c.GetString("user_id")
		captured.token = c.GetString("token")
		c.Status(http.StatusOK)
	})
	return r
}

func TestValidateToken_ValidTokenSetsContext(t *testing.T) {
	var captured capturedAuth
	r := authRouter(&captured)
	token := signToken(t, testSecret, jwt.MapClaims{"user_id": "u1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", captured.userID)
	assert.Equal(t, token, captured.token)
}

func TestValidateToken_SubClaimFallback(t *testing.T) {
	var captured capturedAuth
	r := authRouter(&captured)
	token := signToken(t, testSecret, jwt.MapClaims{"sub": "u2"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u2", captured.userID)
}

func TestValidateToken_MissingHeader(t *testing.T) {
	r := authRouter(&capturedAuth{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	r := authRouter(&capturedAuth{})
	token := signToken(t, "other-secret", jwt.MapClaims{"user_id": "u1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionID_GeneratesWhenAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var sessionID string
	r.GET("/cart", SessionID(), func(c *gin.Context) {
		sessionID = c.GetString("session_id")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart", nil))

	assert.NotEmpty(t, sessionID)
	// echoed back so the client can persist it
	assert.Equal(t, sessionID, w.Header().Get(SessionHeader))
}

func TestSessionID_ReusesPresented(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var sessionID string
	r.GET("/cart", SessionID(), func(c *gin.Context) {
		sessionID = c.GetString("session_id")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set(SessionHeader, "sess-42")
	r.ServeHTTP(w, req)

	assert.Equal(t, "sess-42", sessionID)
	assert.Equal(t, "sess-42", w.Header().Get(SessionHeader))
}
