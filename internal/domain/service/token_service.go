package service

import "github.com/golang-jwt/jwt/v5"

// TokenService validates the access tokens issued by the authentication
// service. Token issuance (login, refresh) lives outside this service; only
// validation is needed to authenticate incoming requests.
type TokenService interface {
	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
