package scanapi

import (
	"context"
	"net/http"
)

// Me returns the authenticated user's profile with their tenant.
func (s *Session) Me(ctx context.Context) (MeResponse, error) {
	var out MeResponse
	err := s.getJSON(ctx, "/v1/users/me", &out)
	return out, err
}

// UpdateMe changes the profile's email and full name.
func (s *Session) UpdateMe(ctx context.Context, req UpdateProfileRequest) (MeResponse, error) {
	var out MeResponse
	err := s.putJSON(ctx, "/v1/users/me", req, &out)
	return out, err
}

// ChangePassword changes the account password after verifying the old one.
func (s *Session) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	resp, err := s.doJSON(ctx, http.MethodPost, "/v1/auth/change-password",
		ChangePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// EnrollMFA provisions a TOTP secret for the account.
func (s *Session) EnrollMFA(ctx context.Context) (MFAEnrollResponse, error) {
	var out MFAEnrollResponse
	err := s.postJSON(ctx, "/v1/users/me/mfa/enroll", nil, &out, http.StatusOK)
	return out, err
}

// ConfirmMFA validates a first TOTP code against the enrolled secret.
func (s *Session) ConfirmMFA(ctx context.Context, code string) error {
	resp, err := s.doJSON(ctx, http.MethodPost, "/v1/users/me/mfa/confirm", MFAConfirmRequest{Code: code})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// Tenant returns the tenant owned by the authenticated user.
func (s *Session) Tenant(ctx context.Context) (TenantResponse, error) {
	var out TenantResponse
	err := s.getJSON(ctx, "/v1/tenants/me", &out)
	return out, err
}
