package service

import (
	"context"
	"strings"

	"github.com/quollsec/scanhub/internal/api/domain"
	"github.com/quollsec/scanhub/internal/api/store"
	"github.com/quollsec/scanhub/pkg/idx"
	"github.com/quollsec/scanhub/pkg/slogx"
)

type TenantUserService struct {
	Store store.Store
}

// TenantUserInput is the create/update payload. IsActive is typed any on
// purpose: the field must be a JSON boolean, and truthy strings like "yes"
// or "True" are rejected rather than coerced.
type TenantUserInput struct {
	Name             string
	OrganizationName string
	IsActive         any
}

func (s *TenantUserService) validate(in TenantUserInput) (bool, error) {
	fe := FieldErrors{}
	if strings.TrimSpace(in.Name) == "" {
		fe.Add("name", "Name cannot be empty")
	}
	if strings.TrimSpace(in.OrganizationName) == "" {
		fe.Add("organization_name", "Organization name cannot be empty")
	}

	active := false
	if in.IsActive != nil {
		b, ok := in.IsActive.(bool)
		if !ok {
			fe.Add("is_active", "is_active must be a boolean value")
		} else {
			active = b
		}
	}

	if len(fe) > 0 {
		return false, fe
	}
	return active, nil
}

// Create validates and stores a tenant user under the tenant.
func (s *TenantUserService) Create(ctx context.Context, tenantID string, in TenantUserInput) (domain.TenantUser, error) {
	active, err := s.validate(in)
	if err != nil {
		return domain.TenantUser{}, err
	}

	if _, err := s.Store.Tenants().GetTenantByID(ctx, tenantID); err != nil {
		return domain.TenantUser{}, err
	}

	tu := domain.TenantUser{
		ID:               idx.New().String(),
		TenantID:         tenantID,
		Name:             strings.TrimSpace(in.Name),
		OrganizationName: strings.TrimSpace(in.OrganizationName),
		IsActive:         active,
	}
	if err := s.Store.TenantUsers().CreateTenantUser(ctx, tu); err != nil {
		return domain.TenantUser{}, err
	}

	slogx.FromContext(ctx).Info("tenant user created", "tenant_id", tenantID, "tenant_user_id", tu.ID)
	return tu, nil
}

// Get loads a tenant user by ID.
func (s *TenantUserService) Get(ctx context.Context, id string) (domain.TenantUser, error) {
	return s.Store.TenantUsers().GetTenantUserByID(ctx, id)
}

// List returns all tenant users under the tenant.
func (s *TenantUserService) List(ctx context.Context, tenantID string) ([]domain.TenantUser, error) {
	return s.Store.TenantUsers().ListTenantUsers(ctx, tenantID)
}

// Update validates and rewrites a tenant user.
func (s *TenantUserService) Update(ctx context.Context, id string, in TenantUserInput) (domain.TenantUser, error) {
	active, err := s.validate(in)
	if err != nil {
		return domain.TenantUser{}, err
	}

	tu, err := s.Store.TenantUsers().GetTenantUserByID(ctx, id)
	if err != nil {
		return domain.TenantUser{}, err
	}

	tu.Name = strings.TrimSpace(in.Name)
	tu.OrganizationName = strings.TrimSpace(in.OrganizationName)
	tu.IsActive = active

	if err := s.Store.TenantUsers().UpdateTenantUser(ctx, tu); err != nil {
		return domain.TenantUser{}, err
	}
	return tu, nil
}

// Delete removes a tenant user.
func (s *TenantUserService) Delete(ctx context.Context, id string) error {
	if _, err := s.Store.TenantUsers().GetTenantUserByID(ctx, id); err != nil {
		return err
	}
	return s.Store.TenantUsers().DeleteTenantUser(ctx, id)
}
