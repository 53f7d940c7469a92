package jwtx_test

import (
	"testing"
	"time"

	"github.com/quollsec/scanhub/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const exampleIssuer = "scanhub-test"

func TestEdDSASignAndVerify(t *testing.T) {
	signer, err := jwtx.NewEdDSASigner("test-key-eddsa")
	require.NoError(t, err)
	require.NotNil(t, signer)
	require.Equal(t, "test-key-eddsa", signer.KID())

	now := time.Now().UTC()
	claims := jwtx.NewAccessClaims(
		"user-456",      // subject
		"eddsauser",     // username
		"tenant-123",    // tenant
		[]string{"pwd"}, // AMR
		exampleIssuer,   // issuer
		5*time.Minute,   // TTL
		now,             // issued at
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	verifier := signer.Verifier(exampleIssuer)

	parsed, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, claims.Issuer, parsed.Issuer)
	require.Equal(t, claims.Subject, parsed.Subject)
	require.Equal(t, claims.Username, parsed.Username)
	require.Equal(t, claims.TenantID, parsed.TenantID)
	require.ElementsMatch(t, claims.AMR, parsed.AMR)
	require.NotEmpty(t, parsed.ID) // JTI should be set
	require.NoError(t, parsed.ValidateExpiry())
}

func TestEdDSAVerifyFailsForWrongIssuer(t *testing.T) {
	signer, err := jwtx.NewEdDSASigner("test-key")
	require.NoError(t, err)

	claims := jwtx.NewAccessClaims(
		"user-1", "alice", "",
		[]string{"pwd"}, "other-issuer", time.Minute, time.Now().UTC(),
	)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = signer.Verifier(exampleIssuer).Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestEdDSAVerifyFailsForWrongKey(t *testing.T) {
	signer, err := jwtx.NewEdDSASigner("key-a")
	require.NoError(t, err)
	other, err := jwtx.NewEdDSASigner("key-b")
	require.NoError(t, err)

	claims := jwtx.NewAccessClaims(
		"user-1", "alice", "",
		[]string{"pwd"}, exampleIssuer, time.Minute, time.Now().UTC(),
	)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = other.Verifier(exampleIssuer).Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalid)
}

func TestEdDSAVerifyFailsForGarbage(t *testing.T) {
	signer, err := jwtx.NewEdDSASigner("key")
	require.NoError(t, err)

	_, err = signer.Verifier(exampleIssuer).Verify("not.a.jwt")
	require.ErrorIs(t, err, jwtx.ErrInvalid)
}

func TestClaimsValidateExpiry(t *testing.T) {
	t.Run("expired token", func(t *testing.T) {
		claims := jwtx.NewAccessClaims(
			"user-1", "alice", "",
			nil, exampleIssuer, time.Minute, time.Now().UTC().Add(-time.Hour),
		)
		require.ErrorIs(t, claims.ValidateExpiry(), jwtx.ErrExpired)
	})

	t.Run("token from the future", func(t *testing.T) {
		claims := jwtx.NewAccessClaims(
			"user-1", "alice", "",
			nil, exampleIssuer, time.Minute, time.Now().UTC().Add(time.Hour),
		)
		require.ErrorIs(t, claims.ValidateExpiry(), jwtx.ErrNotYetValid)
	})
}
