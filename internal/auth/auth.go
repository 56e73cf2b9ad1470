package auth

import "github.com/golang-jwt/jwt/v5"

// Authenticator verifies the bearer tokens the POS backend issues to signed-in
// customers. This service never issues tokens itself; it only reads identity
// out of them to scope per-user client state.
type Authenticator interface {
	ValidateAccessToken(token string) (*jwt.Token, error)
}
