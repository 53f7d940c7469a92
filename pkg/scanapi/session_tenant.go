package scanapi

import (
	"context"
	"net/http"
)

// CreateTenantUser adds a member to the authenticated user's tenant.
func (s *Session) CreateTenantUser(ctx context.Context, req TenantUserRequest) (TenantUserResponse, error) {
	var out TenantUserResponse
	err := s.postJSON(ctx, "/v1/tenant-users", req, &out, http.StatusCreated)
	return out, err
}

// GetTenantUser loads a tenant user by ID.
func (s *Session) GetTenantUser(ctx context.Context, id string) (TenantUserResponse, error) {
	var out TenantUserResponse
	err := s.getJSON(ctx, "/v1/tenant-users/"+id, &out)
	return out, err
}

// ListTenantUsers returns the tenant's members.
func (s *Session) ListTenantUsers(ctx context.Context) ([]TenantUserResponse, error) {
	var out []TenantUserResponse
	err := s.getJSON(ctx, "/v1/tenant-users", &out)
	return out, err
}

// UpdateTenantUser rewrites a tenant user.
func (s *Session) UpdateTenantUser(ctx context.Context, id string, req TenantUserRequest) (TenantUserResponse, error) {
	var out TenantUserResponse
	err := s.putJSON(ctx, "/v1/tenant-users/"+id, req, &out)
	return out, err
}

// DeleteTenantUser removes a tenant user.
func (s *Session) DeleteTenantUser(ctx context.Context, id string) error {
	return s.delete(ctx, "/v1/tenant-users/"+id)
}
