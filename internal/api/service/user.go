package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/quollsec/scanhub/internal/api/domain"
	"github.com/quollsec/scanhub/internal/api/store"
	"github.com/quollsec/scanhub/pkg/slogx"
)

type UserService struct {
	Store store.Store
}

// UserWithTenant is the profile read model: the user plus their tenant,
// when one has been provisioned.
type UserWithTenant struct {
	User   domain.User
	Tenant *domain.Tenant
}

// GetProfile loads the user and, best effort, their tenant.
func (s *UserService) GetProfile(ctx context.Context, userID string) (UserWithTenant, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return UserWithTenant{}, err
	}

	out := UserWithTenant{User: user}
	tenant, err := s.Store.Tenants().GetTenantByUserID(ctx, userID)
	if err == nil {
		out.Tenant = &tenant
	} else if !errors.Is(err, store.ErrNotFound) {
		return UserWithTenant{}, err
	}
	return out, nil
}

type UpdateProfileInput struct {
	Email    string
	FullName string
}

// UpdateProfile changes email and full name. The new email must be unused by
// any account, active or not, and the full name must contain at least a first
// and a last name.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (UserWithTenant, error) {
	fe := FieldErrors{}

	email := strings.TrimSpace(in.Email)
	if email == "" {
		fe.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		fe.Add("email", "Enter a valid email address")
	}

	fullName := strings.TrimSpace(in.FullName)
	if len(strings.Fields(fullName)) < 2 {
		fe.Add("full_name", "Full name should contain both first name and last name")
	}
	if len(fe) > 0 {
		return UserWithTenant{}, fe
	}

	current, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return UserWithTenant{}, err
	}

	if !strings.EqualFold(email, current.Email) {
		taken, err := s.Store.Users().ExistsEmail(ctx, email)
		if err != nil {
			return UserWithTenant{}, err
		}
		if taken {
			return UserWithTenant{}, NewFieldError("email", "Email address already exists")
		}
	}

	if err := s.Store.Users().UpdateProfile(ctx, userID, email, fullName); err != nil {
		return UserWithTenant{}, err
	}

	slogx.FromContext(ctx).Info("profile updated", "user_id", userID)
	return s.GetProfile(ctx, userID)
}
