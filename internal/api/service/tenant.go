package service

import (
	"context"

	"github.com/quollsec/scanhub/internal/api/domain"
	"github.com/quollsec/scanhub/internal/api/store"
)

type TenantService struct {
	Store store.Store
}

// GetTenant loads a tenant by ID.
func (s *TenantService) GetTenant(ctx context.Context, id string) (domain.Tenant, error) {
	return s.Store.Tenants().GetTenantByID(ctx, id)
}

// GetTenantForUser loads the tenant owned by the user.
func (s *TenantService) GetTenantForUser(ctx context.Context, userID string) (domain.Tenant, error) {
	return s.Store.Tenants().GetTenantByUserID(ctx, userID)
}
