package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &UserService{Store: st}

	user := registerUser(t, st, "pam@example.com", "supersecret1")

	profile, err := svc.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, user.ID, profile.User.ID)
	require.NotNil(t, profile.Tenant, "registration provisions a tenant")
	require.Equal(t, "pam@example.com_tenant", profile.Tenant.Name)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &UserService{Store: st}

	user := registerUser(t, st, "quinn@example.com", "supersecret1")

	t.Run("single word full name rejected", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, user.ID, UpdateProfileInput{
			Email:    "quinn@example.com",
			FullName: "Quinn",
		})
		fe, ok := AsFieldErrors(err)
		require.True(t, ok)
		require.Contains(t, fe["full_name"], "Full name should contain both first name and last name")
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, user.ID, UpdateProfileInput{
			Email:    "not-an-email",
			FullName: "Quinn Adams",
		})
		fe, ok := AsFieldErrors(err)
		require.True(t, ok)
		require.Contains(t, fe["email"], "Enter a valid email address")
	})

	t.Run("taken email rejected", func(t *testing.T) {
		registerUser(t, st, "taken@example.com", "supersecret1")

		_, err := svc.UpdateProfile(ctx, user.ID, UpdateProfileInput{
			Email:    "taken@example.com",
			FullName: "Quinn Adams",
		})
		fe, ok := AsFieldErrors(err)
		require.True(t, ok)
		require.Contains(t, fe["email"], "Email address already exists")
	})

	t.Run("keeping own email is not a conflict", func(t *testing.T) {
		profile, err := svc.UpdateProfile(ctx, user.ID, UpdateProfileInput{
			Email:    "Quinn@Example.com", // case-insensitive match of the current email
			FullName: "Quinn Adams",
		})
		require.NoError(t, err)
		require.Equal(t, "Quinn Adams", profile.User.FullName)
	})

	t.Run("successful change", func(t *testing.T) {
		profile, err := svc.UpdateProfile(ctx, user.ID, UpdateProfileInput{
			Email:    "quinn.adams@example.com",
			FullName: "Quinn  Adams ", // whitespace is tolerated
		})
		require.NoError(t, err)
		require.Equal(t, "quinn.adams@example.com", profile.User.Email)
	})
}
