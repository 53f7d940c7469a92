package service

import (
	"context"
	"testing"

	"github.com/quollsec/scanhub/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &PasswordService{Store: st}

	user := registerUser(t, st, "olga@example.com", "supersecret1")

	t.Run("wrong old password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID, ChangePasswordInput{
			OldPassword: "notthepassword",
			NewPassword: "brandnewsecret",
		})
		fe, ok := AsFieldErrors(err)
		require.True(t, ok)
		require.Contains(t, fe["old_password"], "Old password is incorrect")
	})

	t.Run("missing fields", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID, ChangePasswordInput{})
		fe, ok := AsFieldErrors(err)
		require.True(t, ok)
		require.Contains(t, fe["old_password"], "Old password is required")
		require.Contains(t, fe["new_password"], "New password is required")
	})

	t.Run("short new password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID, ChangePasswordInput{
			OldPassword: "supersecret1",
			NewPassword: "short",
		})
		fe, ok := AsFieldErrors(err)
		require.True(t, ok)
		require.Contains(t, fe["new_password"], "Password must be at least 8 characters")
	})

	t.Run("successful change", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID, ChangePasswordInput{
			OldPassword: "supersecret1",
			NewPassword: "brandnewsecret",
		})
		require.NoError(t, err)

		stored, err := st.Users().GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.NoError(t, cryptox.VerifyPassword("brandnewsecret", stored.PasswordHash))
		require.ErrorIs(t,
			cryptox.VerifyPassword("supersecret1", stored.PasswordHash),
			cryptox.ErrPasswordMismatch)
	})
}
