package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dish-dash-backend/helpers"
	"dish-dash-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(tokens *helpers.TokenHelper) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/me", Authentication(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": c.GetString("uid"), "role": c.GetString("role")})
	})
	router.GET("/admin", Authentication(tokens), AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestAuthenticationRejectsMissingToken(t *testing.T) {
	router := newProtectedRouter(helpers.NewTokenHelper("test-secret"))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticationRejectsBadToken(t *testing.T) {
	router := newProtectedRouter(helpers.NewTokenHelper("test-secret"))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("token", "garbage")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticationSetsIdentity(t *testing.T) {
	tokens := helpers.NewTokenHelper("test-secret")
	router := newProtectedRouter(tokens)

	token, err := tokens.GenerateToken("asha@example.com", "user-1", models.RoleCustomer)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("token", token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestAdminOnly(t *testing.T) {
	tokens := helpers.NewTokenHelper("test-secret")
	router := newProtectedRouter(tokens)

	customerToken, err := tokens.GenerateToken("asha@example.com", "user-1", models.RoleCustomer)
	require.NoError(t, err)
	adminToken, err := tokens.GenerateToken("admin@example.com", "admin-1", models.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("token", customerToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("token", adminToken)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
