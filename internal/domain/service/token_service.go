package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is a token payload the issuer can stamp with its lifetime.
type Claims interface {
	jwt.Claims
	Stamp(issuedAt, expiresAt time.Time)
}

// ClaimUser is the nested subject of a registration token.
type ClaimUser struct {
	ID string `json:"id"`
}

// RegistrationClaims is issued after sign-up and identifies the user by id only.
type RegistrationClaims struct {
	User ClaimUser `json:"user"`
	jwt.RegisteredClaims
}

// NewRegistrationClaims builds the claims of a freshly registered user.
func NewRegistrationClaims(userID uuid.UUID) *RegistrationClaims {
	return &RegistrationClaims{User: ClaimUser{ID: userID.String()}}
}

// Stamp sets iat and exp.
func (c *RegistrationClaims) Stamp(issuedAt, expiresAt time.Time) {
	c.IssuedAt = jwt.NewNumericDate(issuedAt)
	c.ExpiresAt = jwt.NewNumericDate(expiresAt)
}

// LoginClaims is issued after a successful login.
type LoginClaims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewLoginClaims builds the claims of an authenticated user.
func NewLoginClaims(userID uuid.UUID, email string) *LoginClaims {
	return &LoginClaims{ID: userID.String(), Email: email}
}

// Stamp sets iat and exp.
func (c *LoginClaims) Stamp(issuedAt, expiresAt time.Time) {
	c.IssuedAt = jwt.NewNumericDate(issuedAt)
	c.ExpiresAt = jwt.NewNumericDate(expiresAt)
}

// TokenService defines the interface for issuing and verifying signed bearer tokens.
// Issuance is stateless: nothing about an issued token is persisted.
type TokenService interface {
	// Issue stamps claims with the configured lifetime and signs them.
	Issue(claims Claims) (string, error)

	// Parse verifies the signature and expiry of tokenString and decodes it into claims.
	Parse(tokenString string, claims jwt.Claims) error
}
