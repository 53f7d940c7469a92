package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/quollsec/scanhub/internal/api/domain"
	"github.com/quollsec/scanhub/internal/api/store"
	"github.com/quollsec/scanhub/pkg/cryptox"
	"github.com/quollsec/scanhub/pkg/idx"
	"github.com/quollsec/scanhub/pkg/slogx"
)

const (
	minPasswordLength = 8
	otpDigits         = 6
)

type RegisterService struct {
	Store  store.Store
	OTPTTL time.Duration // validity window for issued activation codes
}

// RegisterInput is the registration payload after transport decoding.
type RegisterInput struct {
	Email    string
	Password string
	Username string // optional; derived from the email local-part when empty
}

// TenantStatus reports the outcome of tenant provisioning during
// registration. The zero value means provisioning failed and was absorbed;
// the transport layer renders it as an empty object.
type TenantStatus struct {
	Type     string
	Message  string
	TenantID string
}

// IsZero reports whether provisioning produced no tenant.
func (t TenantStatus) IsZero() bool { return t == TenantStatus{} }

// Register validates the payload and creates the user plus its tenant.
//
// Duplicate-email rejection only considers active users: an address that has
// registered but never verified may register again, leaving duplicate
// inactive rows behind. A username collision does not fail either; the
// colliding row's email and password are overwritten and the account forced
// back to unverified, so an abandoned registration can be retaken.
func (s *RegisterService) Register(ctx context.Context, in RegisterInput) (domain.User, TenantStatus, error) {
	log := slogx.FromContext(ctx)

	fe := FieldErrors{}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		fe.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		fe.Add("email", "Enter a valid email address")
	}
	if len(in.Password) < minPasswordLength {
		fe.Add("password", fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
	}

	if email != "" {
		taken, err := s.Store.Users().ExistsActiveEmail(ctx, email)
		if err != nil {
			return domain.User{}, TenantStatus{}, fmt.Errorf("check email uniqueness: %w", err)
		}
		if taken {
			fe.Add("email", "User with this email already exists")
		}
	}
	if len(fe) > 0 {
		return domain.User{}, TenantStatus{}, fe
	}

	username := strings.TrimSpace(in.Username)
	if username == "" {
		username = email[:strings.Index(email, "@")]
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.User{}, TenantStatus{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsActive:     false,
	}

	err = s.Store.Users().CreateUser(ctx, user)
	if errors.Is(err, store.ErrAlreadyExists) {
		// Username collision: reuse the existing row instead of failing.
		existing, getErr := s.Store.Users().GetUserByUsername(ctx, username)
		if getErr != nil {
			return domain.User{}, TenantStatus{}, fmt.Errorf("load colliding user: %w", getErr)
		}
		if err := s.Store.Users().ReplaceUserCredentials(ctx, existing.ID, email, hash); err != nil {
			return domain.User{}, TenantStatus{}, fmt.Errorf("overwrite colliding user: %w", err)
		}

		user = existing
		user.Email = email
		user.PasswordHash = hash
		user.IsActive = false

		log.Info("registration reused existing username",
			"user_id", user.ID, "username", username)
	} else if err != nil {
		return domain.User{}, TenantStatus{}, fmt.Errorf("create user: %w", err)
	}

	tenantStatus := s.provisionTenant(ctx, user)

	if err := s.issueOTP(ctx, user.ID); err != nil {
		// The activation code is re-issuable; registration itself stands.
		log.Error("failed to issue activation code", "user_id", user.ID, "err", err)
	}

	return user, tenantStatus, nil
}

// provisionTenant creates the user's tenant if one does not exist yet.
// Failures are absorbed: registration must not fail because of tenant
// provisioning. The check-then-create is not atomic; a concurrent duplicate
// hits the unique constraint on tenants.user_id and is absorbed the same way.
func (s *RegisterService) provisionTenant(ctx context.Context, user domain.User) TenantStatus {
	log := slogx.FromContext(ctx)

	exists, err := s.Store.Tenants().ExistsForUser(ctx, user.ID)
	if err != nil {
		log.Error("tenant existence check failed", "user_id", user.ID, "err", err)
		return TenantStatus{}
	}
	if exists {
		return TenantStatus{}
	}

	tenant := domain.Tenant{
		ID:     idx.New().String(),
		Name:   user.Email + "_tenant",
		UserID: user.ID,
	}
	if err := s.Store.Tenants().CreateTenant(ctx, tenant); err != nil {
		log.Error("tenant provisioning failed", "user_id", user.ID, "err", err)
		return TenantStatus{}
	}

	return TenantStatus{
		Type:     "success",
		Message:  "Tenant created successfully",
		TenantID: tenant.ID,
	}
}

// issueOTP invalidates any outstanding activation codes and stores a fresh
// one. Delivery is handled out-of-band; the code is logged for the mail
// pipeline to pick up in dev environments.
func (s *RegisterService) issueOTP(ctx context.Context, userID string) error {
	code, err := cryptox.GenerateNumericCode(otpDigits)
	if err != nil {
		return err
	}

	ttl := s.OTPTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.OTPs().DeactivateUserOTPs(ctx, userID); err != nil {
			return err
		}
		return tx.OTPs().CreateOTP(ctx, domain.UserOTP{
			ID:        idx.New().String(),
			UserID:    userID,
			Code:      code,
			IsActive:  true,
			ExpiresAt: time.Now().UTC().Add(ttl),
		})
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("activation code issued", "user_id", userID, "otp", code)
	return nil
}
