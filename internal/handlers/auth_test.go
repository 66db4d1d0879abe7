package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginFlow(t *testing.T) {
	env := newTestEnv(t)

	token := env.register(t, "owner@example.com")
	require.NotEmpty(t, token)

	w := env.request(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "owner@example.com",
		"password": "different",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.request(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "owner@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "owner@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterRejectsBadInput(t *testing.T) {
	env := newTestEnv(t)

	// Not an email address.
	w := env.request(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "not-an-email",
		"password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Password below minimum length.
	w = env.request(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "owner@example.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/projects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.request(t, http.MethodGet, "/api/projects", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNoRouteReturnsPathAndMethod(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/nope", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decode[map[string]any](t, w)
	assert.Equal(t, "not found", body["error"])
	assert.Equal(t, "/api/nope", body["path"])
	assert.Equal(t, "GET", body["method"])
}
