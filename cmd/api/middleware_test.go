package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bearerToken(t *testing.T, secret, subject string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	return "Bearer " + token
}

func listFavorites(t *testing.T, mux http.Handler, authorization, locationID string) []string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/v1/favorites", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	if locationID != "" {
		req.Header.Set("x-local-id", locationID)
	}
	rr := executeRequest(mux, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var env struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	return env.Data
}

func TestFavoritesScopedByIdentityAndLocation(t *testing.T) {
	app := newTestApplication(t, "http://backend.invalid")
	mux := app.mount()

	userToken := bearerToken(t, testAuthSecret, "user-42")

	// Signed-in customer favorites a product at location loc-1.
	req := httptest.NewRequest(http.MethodPut, "/v1/favorites/p1", nil)
	req.Header.Set("Authorization", userToken)
	req.Header.Set("x-local-id", "loc-1")
	rr := executeRequest(mux, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	assert.Equal(t, []string{"p1"}, listFavorites(t, mux, userToken, "loc-1"))
	assert.Empty(t, listFavorites(t, mux, "", "loc-1"), "guest scope stays clean")
	assert.Empty(t, listFavorites(t, mux, userToken, "loc-2"), "other locations stay clean")
	assert.Empty(t, listFavorites(t, mux, userToken, ""), "no-location scope stays clean")
}

func TestScopeMiddlewareGuestWithoutToken(t *testing.T) {
	app := newTestApplication(t, "http://backend.invalid")
	mux := app.mount()

	rr := executeRequest(mux, httptest.NewRequest(http.MethodGet, "/v1/favorites", nil))
	assert.Equal(t, http.StatusOK, rr.Code, "identity is optional")
}

func TestScopeMiddlewareRejectsBadTokens(t *testing.T) {
	app := newTestApplication(t, "http://backend.invalid")
	mux := app.mount()

	tests := []struct {
		name          string
		authorization string
	}{
		{"malformed header", "NotBearer zzz"},
		{"garbage token", "Bearer not.a.token"},
		{"wrong secret", bearerToken(t, "other-secret", "user-42")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/favorites", nil)
			req.Header.Set("Authorization", tt.authorization)
			rr := executeRequest(mux, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestToggleFavoriteHandler(t *testing.T) {
	app := newTestApplication(t, "http://backend.invalid")
	mux := app.mount()

	rr := executeRequest(mux, httptest.NewRequest(http.MethodPost, "/v1/favorites/p1/toggle", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, readBody(t, rr), `"favorite":true`)

	rr = executeRequest(mux, httptest.NewRequest(http.MethodPost, "/v1/favorites/p1/toggle", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, readBody(t, rr), `"favorite":false`)
}

func TestHealthCheckHandler(t *testing.T) {
	app := newTestApplication(t, "http://backend.invalid")
	mux := app.mount()

	rr := executeRequest(mux, httptest.NewRequest(http.MethodGet, "/v1/health", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	body := readBody(t, rr)
	assert.Contains(t, body, `"status":"ok"`)
	assert.Contains(t, body, `"env":"test"`)
}
