package service

import (
	"context"
	"testing"

	"github.com/quollsec/scanhub/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	tokens := newTokenService(t, st)
	svc := &LoginService{Store: st, Tokens: tokens}

	user := registerUser(t, st, "ivy@example.com", "supersecret1")
	require.NoError(t, st.Users().ActivateUser(ctx, user.ID))

	t.Run("valid credentials", func(t *testing.T) {
		result, err := svc.Login(ctx, LoginInput{Email: "ivy@example.com", Password: "supersecret1"})
		require.NoError(t, err)
		require.Equal(t, user.ID, result.User.ID)
		require.NotEmpty(t, result.Token)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "supersecret1"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{Email: "ivy@example.com", Password: "wrongsecret"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("empty credentials", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestLoginRejectsUnverifiedAccount(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &LoginService{Store: st, Tokens: newTokenService(t, st)}

	registerUser(t, st, "jack@example.com", "supersecret1")

	// Correct password on an unverified account yields the same opaque error
	// as bad credentials.
	_, err := svc.Login(ctx, LoginInput{Email: "jack@example.com", Password: "supersecret1"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginTokenCarriesTenant(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	tokens := newTokenService(t, st)
	svc := &LoginService{Store: st, Tokens: tokens}

	user := registerUser(t, st, "kate@example.com", "supersecret1")
	require.NoError(t, st.Users().ActivateUser(ctx, user.ID))

	tenant, err := st.Tenants().GetTenantByUserID(ctx, user.ID)
	require.NoError(t, err)

	result, err := svc.Login(ctx, LoginInput{Email: "kate@example.com", Password: "supersecret1"})
	require.NoError(t, err)

	verifier := tokens.Signer.(*jwtx.EdDSASigner).Verifier(tokens.Issuer)
	claims, err := verifier.Verify(result.Token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.Subject)
	require.Equal(t, "kate", claims.Username)
	require.Equal(t, tenant.ID, claims.TenantID)
	require.Equal(t, []string{"pwd"}, claims.AMR)
	require.NoError(t, claims.ValidateExpiry())
}
