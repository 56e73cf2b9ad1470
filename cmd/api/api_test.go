package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vitrina/internal/auth"
	"vitrina/internal/cart"
	"vitrina/internal/catalog"
	"vitrina/internal/kv"
	"vitrina/internal/orders"
	"vitrina/internal/prefs"
)

const testAuthSecret = "test-secret"

// newTestApplication wires a full application over an in-memory state store,
// pointing both backend clients at backendURL.
func newTestApplication(t *testing.T, backendURL string) *application {
	t.Helper()

	refs, err := orders.NewReferenceGenerator("test-salt")
	require.NoError(t, err)

	store := kv.NewMemory()
	return &application{
		config: config{
			env:         "test",
			backendURL:  backendURL,
			frontendURL: "http://localhost:3000",
		},
		logger:        zap.NewNop().Sugar(),
		cart:          cart.NewStore(store),
		favorites:     prefs.NewFavorites(store),
		recent:        prefs.NewRecentlyViewed(store),
		categoryOrder: prefs.NewCategoryOrder(store),
		catalog:       catalog.NewClient(backendURL),
		orders:        orders.NewClient(backendURL),
		refs:          refs,
		authenticator: auth.NewJWTAuthenticator(testAuthSecret, "vitrina", "vitrina"),
	}
}

func executeRequest(mux http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func readBody(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	return string(body)
}
