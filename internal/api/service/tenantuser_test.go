package service

import (
	"context"
	"testing"

	"github.com/quollsec/scanhub/internal/api/store"
	"github.com/stretchr/testify/require"
)

func TestTenantUserCreate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &TenantUserService{Store: st}

	owner := registerUser(t, st, "rita@example.com", "supersecret1")
	tenant, err := st.Tenants().GetTenantByUserID(ctx, owner.ID)
	require.NoError(t, err)

	t.Run("valid payload", func(t *testing.T) {
		tu, err := svc.Create(ctx, tenant.ID, TenantUserInput{
			Name:             "Sam Staff",
			OrganizationName: "Acme Corp",
			IsActive:         true,
		})
		require.NoError(t, err)
		require.Equal(t, tenant.ID, tu.TenantID)
		require.True(t, tu.IsActive)
	})

	t.Run("is_active must be a boolean", func(t *testing.T) {
		_, err := svc.Create(ctx, tenant.ID, TenantUserInput{
			Name:             "Sam Staff",
			OrganizationName: "Acme Corp",
			IsActive:         "yes",
		})
		fe, ok := AsFieldErrors(err)
		require.True(t, ok)
		require.Contains(t, fe["is_active"], "is_active must be a boolean value")
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Create(ctx, tenant.ID, TenantUserInput{})
		fe, ok := AsFieldErrors(err)
		require.True(t, ok)
		require.Contains(t, fe["name"], "Name cannot be empty")
		require.Contains(t, fe["organization_name"], "Organization name cannot be empty")
	})

	t.Run("unknown tenant", func(t *testing.T) {
		_, err := svc.Create(ctx, "no-such-tenant", TenantUserInput{
			Name:             "Sam Staff",
			OrganizationName: "Acme Corp",
		})
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestTenantUserLifecycle(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &TenantUserService{Store: st}

	owner := registerUser(t, st, "sara@example.com", "supersecret1")
	tenant, err := st.Tenants().GetTenantByUserID(ctx, owner.ID)
	require.NoError(t, err)

	created, err := svc.Create(ctx, tenant.ID, TenantUserInput{
		Name:             "Original Name",
		OrganizationName: "Initech",
		IsActive:         true,
	})
	require.NoError(t, err)

	listed, err := svc.List(ctx, tenant.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	updated, err := svc.Update(ctx, created.ID, TenantUserInput{
		Name:             "Renamed",
		OrganizationName: "Initech",
		IsActive:         false,
	})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Name)
	require.False(t, updated.IsActive)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	err = svc.Delete(ctx, created.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}
