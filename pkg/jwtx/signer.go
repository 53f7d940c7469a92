package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
	ErrIssuer      = errors.New("jwtx: unexpected issuer")
	ErrInvalid     = errors.New("jwtx: invalid token")
)

// Signer signs access-token claims.
type Signer interface {
	Sign(claims Claims) (string, error)
	KID() string
}

// EdDSASigner signs tokens with an Ed25519 key. The keypair is generated at
// process start; tokens do not survive a restart, matching the session model
// of the service.
type EdDSASigner struct {
	kid  string
	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
}

// NewEdDSASigner generates a fresh Ed25519 keypair.
func NewEdDSASigner(kid string) (*EdDSASigner, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: generate ed25519 key: %w", err)
	}
	return &EdDSASigner{kid: kid, priv: priv, pub: pub}, nil
}

func (s *EdDSASigner) KID() string { return s.kid }

// PublicKey returns the verification key for this signer.
func (s *EdDSASigner) PublicKey() ed25519.PublicKey { return s.pub }

// Sign turns claims into a signed JWT string.
func (s *EdDSASigner) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.priv)
}

// Verifier returns an EdDSAVerifier for tokens minted by this signer.
func (s *EdDSASigner) Verifier(issuer string) *EdDSAVerifier {
	return &EdDSAVerifier{pub: s.pub, issuer: issuer}
}
