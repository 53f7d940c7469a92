package service

import (
	"context"
	"testing"

	"github.com/quollsec/scanhub/internal/api/domain"
	"github.com/quollsec/scanhub/internal/api/store"
	"github.com/quollsec/scanhub/pkg/idx"
	"github.com/stretchr/testify/require"
)

// seedPermissions inserts a permission catalog for group tests.
func seedPermissions(t *testing.T, st store.Store, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, st.Permissions().CreatePermission(context.Background(), domain.Permission{
			ID:       idx.New().String(),
			Name:     name,
			Codename: name,
		}))
	}
}

func TestGroupCreate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &GroupService{Store: st}

	seedPermissions(t, st, "projects.view", "projects.edit", "scans.run")

	t.Run("with permissions", func(t *testing.T) {
		g, err := svc.Create(ctx, "Analysts", []string{"projects.view", "scans.run"})
		require.NoError(t, err)
		require.Equal(t, "Analysts", g.Group.Name)
		require.ElementsMatch(t, []string{"projects.view", "scans.run"}, g.Permissions)
	})

	t.Run("unknown permission names are skipped", func(t *testing.T) {
		g, err := svc.Create(ctx, "Auditors", []string{"projects.view", "does.not.exist"})
		require.NoError(t, err)
		require.Equal(t, []string{"projects.view"}, g.Permissions)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, "  ", nil)
		fe, ok := AsFieldErrors(err)
		require.True(t, ok)
		require.Contains(t, fe["name"], "Name cannot be empty")
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, "Analysts", nil)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}

func TestGroupUpdate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &GroupService{Store: st}

	seedPermissions(t, st, "projects.view", "projects.edit", "scans.run")

	g, err := svc.Create(ctx, "Engineers", []string{"projects.view"})
	require.NoError(t, err)

	t.Run("nil permissions keeps the current set", func(t *testing.T) {
		name := "Platform Engineers"
		updated, err := svc.Update(ctx, g.Group.ID, UpdateGroupInput{Name: &name})
		require.NoError(t, err)
		require.Equal(t, "Platform Engineers", updated.Group.Name)
		require.Equal(t, []string{"projects.view"}, updated.Permissions)
	})

	t.Run("replacement swaps the whole set", func(t *testing.T) {
		updated, err := svc.Update(ctx, g.Group.ID, UpdateGroupInput{
			Permissions: []string{"projects.edit", "scans.run"},
		})
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"projects.edit", "scans.run"}, updated.Permissions)
	})

	t.Run("empty slice clears permissions", func(t *testing.T) {
		updated, err := svc.Update(ctx, g.Group.ID, UpdateGroupInput{Permissions: []string{}})
		require.NoError(t, err)
		require.Empty(t, updated.Permissions)
	})

	t.Run("unknown group", func(t *testing.T) {
		_, err := svc.Update(ctx, "missing", UpdateGroupInput{})
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestGroupDeleteAndList(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &GroupService{Store: st}

	seedPermissions(t, st, "projects.view")

	a, err := svc.Create(ctx, "Alpha", []string{"projects.view"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Beta", nil)
	require.NoError(t, err)

	groups, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	require.NoError(t, svc.Delete(ctx, a.Group.ID))

	_, err = svc.Get(ctx, a.Group.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	groups, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
}

func TestListPermissionsCatalog(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &GroupService{Store: st}

	seedPermissions(t, st, "projects.view", "projects.edit")

	perms, err := svc.ListPermissions(ctx)
	require.NoError(t, err)
	require.Len(t, perms, 2)
}
