package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"vitrina/internal/auth"
	"vitrina/internal/prefs"
)

type scopeCtxKey string

const scopeCtx scopeCtxKey = "scope"

// requestScope identifies whose preferences a request touches: the customer
// id from a valid bearer token (or the guest sentinel) plus the selected
// store location. The cart deliberately ignores it.
type requestScope struct {
	UserID     string
	LocationID string
}

// ScopeMiddleware resolves the request scope. Identity is optional on every
// route: a missing or unparseable Authorization header falls back to the
// guest scope rather than failing, because the storefront works logged out.
// An invalid token on a request that explicitly claims one is still rejected.
func (app *application) ScopeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope := requestScope{
			LocationID: r.Header.Get("x-local-id"),
		}

		if authHeader := r.Header.Get("Authorization"); authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				app.unauthorizedErrorResponse(w, r, fmt.Errorf("authorization header is malformed"))
				return
			}

			token, err := app.authenticator.ValidateAccessToken(parts[1])
			if err != nil {
				app.unauthorizedErrorResponse(w, r, err)
				return
			}

			sub, err := auth.Subject(token)
			if err != nil {
				app.unauthorizedErrorResponse(w, r, err)
				return
			}
			scope.UserID = sub
		}

		ctx := context.WithValue(r.Context(), scopeCtx, scope)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getScopeFromContext(r *http.Request) requestScope {
	scope, _ := r.Context().Value(scopeCtx).(requestScope)
	return scope
}

// favoritesScope maps the request scope onto the favorites key space.
func favoritesScope(r *http.Request) prefs.Scope {
	s := getScopeFromContext(r)
	return prefs.FavoritesScope(s.UserID, s.LocationID)
}

func categoryOrderScope(r *http.Request) prefs.Scope {
	s := getScopeFromContext(r)
	return prefs.CategoryOrderScope(s.UserID, s.LocationID)
}

func (app *application) RateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.rateLimiter.Enabled {
			if allow, retryAfter := app.rateLimiter.Allow(r.RemoteAddr); !allow {
				app.rateLimitExceededResponse(w, r, retryAfter.String())
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
