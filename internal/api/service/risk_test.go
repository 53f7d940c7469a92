package service

import (
	"context"
	"testing"

	"github.com/quollsec/scanhub/internal/api/store"
	"github.com/stretchr/testify/require"
)

func TestRiskFindings(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &RiskService{Store: st}

	project, _, _ := scanFixture(t, st)

	t.Run("create and list", func(t *testing.T) {
		risk, err := svc.CreateRisk(ctx, FindingInput{
			ProjectID:   project.ID,
			Description: "Exposed admin panel on port 8443",
		})
		require.NoError(t, err)
		require.Equal(t, project.ID, risk.ProjectID)

		risks, err := svc.ListRisks(ctx, project.ID)
		require.NoError(t, err)
		require.Len(t, risks, 1)
	})

	t.Run("empty description rejected", func(t *testing.T) {
		_, err := svc.CreateRisk(ctx, FindingInput{ProjectID: project.ID, Description: "  "})
		fe, ok := AsFieldErrors(err)
		require.True(t, ok)
		require.Contains(t, fe["description"], "Description cannot be empty")
	})

	t.Run("unknown project is not-found, not a field error", func(t *testing.T) {
		_, err := svc.CreateRisk(ctx, FindingInput{ProjectID: "missing", Description: "whatever"})
		require.ErrorIs(t, err, store.ErrNotFound)
		_, isFieldErr := AsFieldErrors(err)
		require.False(t, isFieldErr)
	})

	t.Run("delete", func(t *testing.T) {
		risk, err := svc.CreateRisk(ctx, FindingInput{
			ProjectID:   project.ID,
			Description: "Weak TLS configuration",
		})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteRisk(ctx, risk.ID))
		_, err = svc.GetRisk(ctx, risk.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestVulnerabilityFindings(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &RiskService{Store: st}

	project, _, _ := scanFixture(t, st)

	vuln, err := svc.CreateVulnerability(ctx, FindingInput{
		ProjectID:   project.ID,
		Description: "CVE-2024-12345 in nginx 1.18",
	})
	require.NoError(t, err)

	// Risks and vulnerabilities live in separate tables.
	risks, err := svc.ListRisks(ctx, project.ID)
	require.NoError(t, err)
	require.Empty(t, risks)

	vulns, err := svc.ListVulnerabilities(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, vulns, 1)

	require.NoError(t, svc.DeleteVulnerability(ctx, vuln.ID))
	_, err = svc.GetVulnerability(ctx, vuln.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}
