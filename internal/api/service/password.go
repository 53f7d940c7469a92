package service

import (
	"context"
	"errors"

	"github.com/quollsec/scanhub/internal/api/store"
	"github.com/quollsec/scanhub/pkg/cryptox"
	"github.com/quollsec/scanhub/pkg/slogx"
)

type PasswordService struct {
	Store store.Store
}

type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// ChangePassword verifies the current password before storing a new hash.
// The old-password check stops a hijacked session from silently locking the
// owner out.
func (s *PasswordService) ChangePassword(ctx context.Context, userID string, in ChangePasswordInput) error {
	fe := FieldErrors{}
	if in.OldPassword == "" {
		fe.Add("old_password", "Old password is required")
	}
	if in.NewPassword == "" {
		fe.Add("new_password", "New password is required")
	} else if len(in.NewPassword) < minPasswordLength {
		fe.Add("new_password", "Password must be at least 8 characters")
	}
	if len(fe) > 0 {
		return fe
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := cryptox.VerifyPassword(in.OldPassword, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return NewFieldError("old_password", "Old password is incorrect")
		}
		return err
	}

	newHash, err := cryptox.HashPassword(in.NewPassword)
	if err != nil {
		return err
	}
	if err := s.Store.Users().UpdatePasswordHash(ctx, userID, newHash); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("password changed", "user_id", userID)
	return nil
}
