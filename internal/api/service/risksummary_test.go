package service

import (
	"context"
	"testing"

	"github.com/quollsec/scanhub/internal/api/store"
	"github.com/stretchr/testify/require"
)

func TestRiskSummaryCreate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &RiskSummaryService{Store: st}

	owner := registerUser(t, st, "tessa@example.com", "supersecret1")
	tenant, err := st.Tenants().GetTenantByUserID(ctx, owner.ID)
	require.NoError(t, err)

	t.Run("valid summary", func(t *testing.T) {
		rs, err := svc.Create(ctx, tenant.ID, RiskSummaryInput{
			Title:    "External attack surface",
			Severity: "high",
			Score:    7.8,
		})
		require.NoError(t, err)
		require.Equal(t, tenant.ID, rs.TenantID)
		require.InDelta(t, 7.8, rs.Score, 0.001)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, tenant.ID, RiskSummaryInput{Severity: "low", Score: 1})
		fe, ok := AsFieldErrors(err)
		require.True(t, ok)
		require.Contains(t, fe["title"], "Title cannot be empty")
	})

	t.Run("score out of range rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, tenant.ID, RiskSummaryInput{Title: "Over", Score: 10.5})
		fe, ok := AsFieldErrors(err)
		require.True(t, ok)
		require.Contains(t, fe["score"], "Score must be between 0 and 10")

		_, err = svc.Create(ctx, tenant.ID, RiskSummaryInput{Title: "Under", Score: -1})
		_, ok = AsFieldErrors(err)
		require.True(t, ok)
	})

	t.Run("unknown tenant", func(t *testing.T) {
		_, err := svc.Create(ctx, "missing", RiskSummaryInput{Title: "Orphan", Score: 5})
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestRiskSummaryListAndDelete(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &RiskSummaryService{Store: st}

	owner := registerUser(t, st, "uma@example.com", "supersecret1")
	tenant, err := st.Tenants().GetTenantByUserID(ctx, owner.ID)
	require.NoError(t, err)

	rs, err := svc.Create(ctx, tenant.ID, RiskSummaryInput{Title: "Baseline", Severity: "low", Score: 2})
	require.NoError(t, err)

	listed, err := svc.List(ctx, tenant.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	require.NoError(t, svc.Delete(ctx, rs.ID))

	_, err = svc.Get(ctx, rs.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}
