package service

import (
	"context"
	"testing"

	"github.com/quollsec/scanhub/internal/api/domain"
	"github.com/quollsec/scanhub/internal/api/store"
	"github.com/stretchr/testify/require"
)

// scanFixture provisions a project with one linked and one unlinked target.
func scanFixture(t *testing.T, st store.Store) (project domain.Project, linked, unlinked domain.Target) {
	t.Helper()
	ctx := context.Background()

	fx := newProjectFixture(t, st, 2)
	projSvc := &ProjectService{Store: st}

	p, err := projSvc.Create(ctx, fx.tenant.ID, ProjectInput{
		Name:      "Scan Project",
		TargetIDs: []string{fx.targets[0].ID},
	})
	require.NoError(t, err)

	return p.Project, fx.targets[0], fx.targets[1]
}

func TestScanCreate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ScanService{Store: st}

	project, linked, unlinked := scanFixture(t, st)

	t.Run("queues scan for a project target", func(t *testing.T) {
		scan, err := svc.Create(ctx, ScanInput{ProjectID: project.ID, TargetID: linked.ID})
		require.NoError(t, err)
		require.Equal(t, ScanStatusQueued, scan.Status)
		require.Nil(t, scan.StartedAt)
		require.Nil(t, scan.FinishedAt)
	})

	t.Run("rejects target outside the project", func(t *testing.T) {
		_, err := svc.Create(ctx, ScanInput{ProjectID: project.ID, TargetID: unlinked.ID})
		require.ErrorIs(t, err, ErrTargetNotInProject)
	})

	t.Run("unknown project", func(t *testing.T) {
		_, err := svc.Create(ctx, ScanInput{ProjectID: "missing", TargetID: linked.ID})
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestScanLifecycle(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ScanService{Store: st}

	project, linked, _ := scanFixture(t, st)

	scan, err := svc.Create(ctx, ScanInput{ProjectID: project.ID, TargetID: linked.ID})
	require.NoError(t, err)

	// queued -> finished is not a legal jump
	_, err = svc.MarkFinished(ctx, scan.ID)
	require.Error(t, err)

	running, err := svc.MarkRunning(ctx, scan.ID)
	require.NoError(t, err)
	require.Equal(t, ScanStatusRunning, running.Status)
	require.NotNil(t, running.StartedAt)

	// running -> running is not legal either
	_, err = svc.MarkRunning(ctx, scan.ID)
	require.Error(t, err)

	finished, err := svc.MarkFinished(ctx, scan.ID)
	require.NoError(t, err)
	require.Equal(t, ScanStatusFinished, finished.Status)
	require.NotNil(t, finished.FinishedAt)

	stored, err := svc.Get(ctx, scan.ID)
	require.NoError(t, err)
	require.Equal(t, ScanStatusFinished, stored.Status)
	require.NotNil(t, stored.StartedAt)
	require.NotNil(t, stored.FinishedAt)
}

func TestScanFailurePath(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ScanService{Store: st}

	project, linked, _ := scanFixture(t, st)

	scan, err := svc.Create(ctx, ScanInput{ProjectID: project.ID, TargetID: linked.ID})
	require.NoError(t, err)

	_, err = svc.MarkRunning(ctx, scan.ID)
	require.NoError(t, err)

	failed, err := svc.MarkFailed(ctx, scan.ID)
	require.NoError(t, err)
	require.Equal(t, ScanStatusFailed, failed.Status)
	require.NotNil(t, failed.FinishedAt)
}

func TestScanListAndDelete(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ScanService{Store: st}

	project, linked, _ := scanFixture(t, st)

	first, err := svc.Create(ctx, ScanInput{ProjectID: project.ID, TargetID: linked.ID})
	require.NoError(t, err)
	_, err = svc.Create(ctx, ScanInput{ProjectID: project.ID, TargetID: linked.ID})
	require.NoError(t, err)

	scans, err := svc.List(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, scans, 2)

	require.NoError(t, svc.Delete(ctx, first.ID))

	scans, err = svc.List(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, scans, 1)

	_, err = svc.List(ctx, "missing-project")
	require.ErrorIs(t, err, store.ErrNotFound)
}
