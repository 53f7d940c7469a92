package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/quollsec/scanhub/internal/api/domain"
	"github.com/quollsec/scanhub/internal/api/store"
	"github.com/stretchr/testify/require"
)

// projectFixture provisions a tenant and a couple of targets.
type projectFixture struct {
	tenant  domain.Tenant
	targets []domain.Target
}

func newProjectFixture(t *testing.T, st store.Store, targetCount int) projectFixture {
	t.Helper()
	ctx := context.Background()

	owner := registerUser(t, st, "owner@example.com", "supersecret1")
	tenant, err := st.Tenants().GetTenantByUserID(ctx, owner.ID)
	require.NoError(t, err)

	targetSvc := &TargetService{Store: st}
	targets := make([]domain.Target, 0, targetCount)
	for i := 0; i < targetCount; i++ {
		tgt, err := targetSvc.Create(ctx, TargetInput{
			Name: fmt.Sprintf("target-%d", i),
			Host: fmt.Sprintf("10.0.0.%d", i+1),
			Kind: "network",
		})
		require.NoError(t, err)
		targets = append(targets, tgt)
	}

	return projectFixture{tenant: tenant, targets: targets}
}

func TestProjectCreate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ProjectService{Store: st}
	fx := newProjectFixture(t, st, 2)

	t.Run("valid project expands targets", func(t *testing.T) {
		p, err := svc.Create(ctx, fx.tenant.ID, ProjectInput{
			Name:        "Perimeter Audit",
			Description: "external-facing hosts",
			TargetIDs:   []string{fx.targets[0].ID, fx.targets[1].ID},
		})
		require.NoError(t, err)
		require.Equal(t, "Perimeter Audit", p.Project.Name)
		require.Len(t, p.Targets, 2)
		require.ElementsMatch(t,
			[]string{fx.targets[0].ID, fx.targets[1].ID},
			[]string{p.Targets[0].ID, p.Targets[1].ID})
	})

	t.Run("empty target list rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, fx.tenant.ID, ProjectInput{Name: "No Targets"})
		fe, ok := AsFieldErrors(err)
		require.True(t, ok)
		require.Contains(t, fe["targets"], "Targets list cannot be empty")
	})

	t.Run("unknown target rejected with its id", func(t *testing.T) {
		_, err := svc.Create(ctx, fx.tenant.ID, ProjectInput{
			Name:      "Bad Target",
			TargetIDs: []string{fx.targets[0].ID, "missing-id"},
		})
		fe, ok := AsFieldErrors(err)
		require.True(t, ok)
		require.Contains(t, fe["targets"], "Target missing-id does not exist")
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, fx.tenant.ID, ProjectInput{
			TargetIDs: []string{fx.targets[0].ID},
		})
		fe, ok := AsFieldErrors(err)
		require.True(t, ok)
		require.Contains(t, fe["name"], "Name cannot be empty")
	})
}

func TestProjectUpdateReplacesTargetSet(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ProjectService{Store: st}
	fx := newProjectFixture(t, st, 3)

	p, err := svc.Create(ctx, fx.tenant.ID, ProjectInput{
		Name:      "Initial",
		TargetIDs: []string{fx.targets[0].ID},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, p.Project.ID, ProjectInput{
		Name:        "Renamed",
		Description: "now scanning different hosts",
		TargetIDs:   []string{fx.targets[1].ID, fx.targets[2].ID},
	})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Project.Name)
	require.Len(t, updated.Targets, 2)
	for _, tgt := range updated.Targets {
		require.NotEqual(t, fx.targets[0].ID, tgt.ID, "replaced target must be unlinked")
	}

	// Update must not drop the set down to empty either.
	_, err = svc.Update(ctx, p.Project.ID, ProjectInput{Name: "Renamed"})
	fe, ok := AsFieldErrors(err)
	require.True(t, ok)
	require.Contains(t, fe["targets"], "Targets list cannot be empty")
}

func TestProjectListAndDelete(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ProjectService{Store: st}
	fx := newProjectFixture(t, st, 1)

	p, err := svc.Create(ctx, fx.tenant.ID, ProjectInput{
		Name:      "Only Project",
		TargetIDs: []string{fx.targets[0].ID},
	})
	require.NoError(t, err)

	listed, err := svc.List(ctx, fx.tenant.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Len(t, listed[0].Targets, 1)

	require.NoError(t, svc.Delete(ctx, p.Project.ID))

	_, err = svc.Get(ctx, p.Project.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	listed, err = svc.List(ctx, fx.tenant.ID)
	require.NoError(t, err)
	require.Empty(t, listed)
}
