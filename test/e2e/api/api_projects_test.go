package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/quollsec/scanhub/pkg/scanapi"
	"github.com/stretchr/testify/require"
)

func TestProjectAndScanFlow(t *testing.T) {
	baseURL, container, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := scanapi.NewClient(baseURL)
	ctx := context.Background()

	session := registerAndActivate(t, client, container, "erin@example.com")

	// Provision two targets.
	web, err := session.CreateTarget(ctx, scanapi.TargetRequest{
		Name: "public website",
		Host: "www.example.com",
		Kind: "web",
	})
	require.NoError(t, err)

	vpn, err := session.CreateTarget(ctx, scanapi.TargetRequest{
		Name: "vpn gateway",
		Host: "vpn.example.com",
		Kind: "network",
	})
	require.NoError(t, err)

	t.Run("project requires targets", func(t *testing.T) {
		_, err := session.CreateProject(ctx, scanapi.ProjectRequest{Name: "empty"})
		apiErr := assertAPIError(t, err, http.StatusBadRequest)
		require.Contains(t, apiErr.Fields["targets"], "Targets list cannot be empty")
	})

	project, err := session.CreateProject(ctx, scanapi.ProjectRequest{
		Name:        "External Surface",
		Description: "everything internet-facing",
		Targets:     []string{web.ID},
	})
	require.NoError(t, err)
	require.Len(t, project.Targets, 1)
	require.Equal(t, web.ID, project.Targets[0].ID)

	t.Run("scan of an unlinked target rejected", func(t *testing.T) {
		_, err := session.CreateScan(ctx, project.ID, scanapi.ScanRequest{TargetID: vpn.ID})
		assertAPIError(t, err, http.StatusBadRequest)
	})

	t.Run("scan lifecycle", func(t *testing.T) {
		scan, err := session.CreateScan(ctx, project.ID, scanapi.ScanRequest{TargetID: web.ID})
		require.NoError(t, err)
		require.Equal(t, "queued", scan.Status)

		running, err := session.StartScan(ctx, scan.ID)
		require.NoError(t, err)
		require.Equal(t, "running", running.Status)
		require.NotNil(t, running.StartedAt)

		finished, err := session.FinishScan(ctx, scan.ID)
		require.NoError(t, err)
		require.Equal(t, "finished", finished.Status)
		require.NotNil(t, finished.FinishedAt)
	})

	t.Run("findings", func(t *testing.T) {
		risk, err := session.CreateRisk(ctx, project.ID, scanapi.FindingRequest{
			Description: "Admin interface reachable from the internet",
		})
		require.NoError(t, err)

		_, err = session.CreateVulnerability(ctx, project.ID, scanapi.FindingRequest{
			Description: "Outdated TLS cipher suites",
		})
		require.NoError(t, err)

		risks, err := session.ListRisks(ctx, project.ID)
		require.NoError(t, err)
		require.Len(t, risks, 1)

		vulns, err := session.ListVulnerabilities(ctx, project.ID)
		require.NoError(t, err)
		require.Len(t, vulns, 1)

		require.NoError(t, session.DeleteRisk(ctx, risk.ID))

		risks, err = session.ListRisks(ctx, project.ID)
		require.NoError(t, err)
		require.Empty(t, risks)
	})

	t.Run("update replaces the target set", func(t *testing.T) {
		updated, err := session.UpdateProject(ctx, project.ID, scanapi.ProjectRequest{
			Name:    "External Surface",
			Targets: []string{vpn.ID},
		})
		require.NoError(t, err)
		require.Len(t, updated.Targets, 1)
		require.Equal(t, vpn.ID, updated.Targets[0].ID)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, session.DeleteProject(ctx, project.ID))

		_, err := session.GetProject(ctx, project.ID)
		assertAPIError(t, err, http.StatusNotFound)
	})
}

func TestTenantScopedResources(t *testing.T) {
	baseURL, container, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := scanapi.NewClient(baseURL)
	ctx := context.Background()

	session := registerAndActivate(t, client, container, "frank@example.com")

	t.Run("tenant users", func(t *testing.T) {
		created, err := session.CreateTenantUser(ctx, scanapi.TenantUserRequest{
			Name:             "Grace Analyst",
			OrganizationName: "Acme Corp",
			IsActive:         true,
		})
		require.NoError(t, err)
		require.True(t, created.IsActive)

		_, err = session.CreateTenantUser(ctx, scanapi.TenantUserRequest{
			Name:             "Bad Flag",
			OrganizationName: "Acme Corp",
			IsActive:         "yes",
		})
		apiErr := assertAPIError(t, err, http.StatusBadRequest)
		require.Contains(t, apiErr.Fields["is_active"], "is_active must be a boolean value")

		listed, err := session.ListTenantUsers(ctx)
		require.NoError(t, err)
		require.Len(t, listed, 1)

		require.NoError(t, session.DeleteTenantUser(ctx, created.ID))
	})

	t.Run("risk summaries", func(t *testing.T) {
		rs, err := session.CreateRiskSummary(ctx, scanapi.RiskSummaryRequest{
			Title:    "Quarterly exposure",
			Severity: "medium",
			Score:    5.5,
		})
		require.NoError(t, err)

		_, err = session.CreateRiskSummary(ctx, scanapi.RiskSummaryRequest{
			Title: "Broken score",
			Score: 42,
		})
		apiErr := assertAPIError(t, err, http.StatusBadRequest)
		require.Contains(t, apiErr.Fields["score"], "Score must be between 0 and 10")

		listed, err := session.ListRiskSummaries(ctx)
		require.NoError(t, err)
		require.Len(t, listed, 1)

		require.NoError(t, session.DeleteRiskSummary(ctx, rs.ID))
	})

	t.Run("groups and permissions", func(t *testing.T) {
		name := "Analysts"
		group, err := session.CreateGroup(ctx, scanapi.GroupRequest{
			Name:        &name,
			Permissions: []string{"does.not.exist"},
		})
		require.NoError(t, err)
		require.Empty(t, group.Permissions, "unknown permission names are skipped")

		renamed := "Senior Analysts"
		updated, err := session.UpdateGroup(ctx, group.ID, scanapi.GroupRequest{Name: &renamed})
		require.NoError(t, err)
		require.Equal(t, "Senior Analysts", updated.Name)

		require.NoError(t, session.DeleteGroup(ctx, group.ID))
	})
}
