package jwtx

import (
	"crypto/ed25519"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a raw token string and returns its claims.
type Verifier interface {
	Verify(raw string) (Claims, error)
}

// EdDSAVerifier validates JWTs signed with Ed25519.
type EdDSAVerifier struct {
	pub    ed25519.PublicKey
	issuer string
}

// Verify parses and validates the token signature and issuer. Expiry is
// validated separately via Claims.ValidateExpiry so callers can apply leeway.
func (v *EdDSAVerifier) Verify(raw string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("jwtx: unexpected signing method %q", t.Method.Alg())
		}
		return v.pub, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if !token.Valid {
		return Claims{}, ErrInvalid
	}

	if v.issuer != "" && claims.Issuer != v.issuer {
		return Claims{}, ErrIssuer
	}

	return claims, nil
}
