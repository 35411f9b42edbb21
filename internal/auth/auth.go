package auth

import "github.com/golang-jwt/jwt/v5"

// Authenticator issues and validates the access/refresh token pair for a
// user. The role rides in the access token claims; refresh tokens are
// additionally checked against the copy stored on the user row.
type Authenticator interface {
	GenerateTokens(userID int64, role string) (string, string, error)
	ValidateAccessToken(token string) (*jwt.Token, error)
	ValidateRefreshToken(token string) (*jwt.Token, error)
}
