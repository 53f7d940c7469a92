package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/quollsec/scanhub/pkg/scanapi"
	"github.com/stretchr/testify/require"
)

func TestRegistrationAndActivationFlow(t *testing.T) {
	baseURL, container, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := scanapi.NewClient(baseURL)
	ctx := context.Background()

	resp, err := client.Register(ctx, scanapi.RegisterRequest{
		Email:    "alice@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)
	require.Equal(t, "alice", resp.User.Username, "username derives from the email local-part")
	require.False(t, resp.User.IsActive)
	require.Equal(t, "success", resp.TenantData.Type)
	require.NotEmpty(t, resp.TenantData.TenantID)

	// Login before activation must fail with the opaque credentials error.
	_, err = client.Login(ctx, "alice@example.com", testPassword)
	apiErr := assertAPIError(t, err, http.StatusUnauthorized)
	require.Equal(t, "Incorrect email or password", apiErr.Detail)

	// Consume the activation code recovered from the logs.
	code := fetchActivationCode(t, container, resp.User.ID)
	session, err := client.VerifyOTP(ctx, "alice@example.com", code)
	require.NoError(t, err)
	require.NotEmpty(t, session.Token())

	// The code is single-use.
	_, err = client.VerifyOTP(ctx, "alice@example.com", code)
	apiErr = assertAPIError(t, err, http.StatusBadRequest)
	require.Equal(t, "Invalid OTP or Expired OTP", apiErr.Detail)

	// Login works now.
	loginSession, err := client.Login(ctx, "alice@example.com", testPassword)
	require.NoError(t, err)
	require.True(t, loginSession.User.IsActive)

	// The profile includes the provisioned tenant.
	me, err := loginSession.Me(ctx)
	require.NoError(t, err)
	require.NotNil(t, me.Tenant)
	require.Equal(t, "alice@example.com_tenant", me.Tenant.Name)
}

func TestRegistrationValidation(t *testing.T) {
	baseURL, container, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := scanapi.NewClient(baseURL)
	ctx := context.Background()

	t.Run("missing payload fields", func(t *testing.T) {
		_, err := client.Register(ctx, scanapi.RegisterRequest{})
		apiErr := assertAPIError(t, err, http.StatusBadRequest)
		require.Contains(t, apiErr.Fields["email"], "Email is required")
	})

	t.Run("duplicate active email rejected", func(t *testing.T) {
		registerAndActivate(t, client, container, "bob@example.com")

		_, err := client.Register(ctx, scanapi.RegisterRequest{
			Email:    "bob@example.com",
			Password: testPassword,
			Username: "bob-second",
		})
		apiErr := assertAPIError(t, err, http.StatusBadRequest)
		require.Contains(t, apiErr.Fields["email"], "User with this email already exists")
	})

	t.Run("inactive duplicate email allowed", func(t *testing.T) {
		first, err := client.Register(ctx, scanapi.RegisterRequest{
			Email:    "dave@example.com",
			Password: testPassword,
		})
		require.NoError(t, err)

		second, err := client.Register(ctx, scanapi.RegisterRequest{
			Email:    "dave@example.com",
			Password: testPassword,
			Username: "dave-second",
		})
		require.NoError(t, err)
		require.NotEqual(t, first.User.ID, second.User.ID)
	})
}

func TestPasswordChangeFlow(t *testing.T) {
	baseURL, container, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := scanapi.NewClient(baseURL)
	ctx := context.Background()

	session := registerAndActivate(t, client, container, "carol@example.com")

	t.Run("wrong old password rejected", func(t *testing.T) {
		err := session.ChangePassword(ctx, "not-the-password", "NewPassword456!")
		apiErr := assertAPIError(t, err, http.StatusBadRequest)
		require.Contains(t, apiErr.Fields["old_password"], "Old password is incorrect")
	})

	t.Run("successful change", func(t *testing.T) {
		require.NoError(t, session.ChangePassword(ctx, testPassword, "NewPassword456!"))

		_, err := client.Login(ctx, "carol@example.com", testPassword)
		assertAPIError(t, err, http.StatusUnauthorized)

		_, err = client.Login(ctx, "carol@example.com", "NewPassword456!")
		require.NoError(t, err)
	})
}
