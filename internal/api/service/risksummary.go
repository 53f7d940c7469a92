package service

import (
	"context"
	"strings"

	"github.com/quollsec/scanhub/internal/api/domain"
	"github.com/quollsec/scanhub/internal/api/store"
	"github.com/quollsec/scanhub/pkg/idx"
)

// RiskSummaryService manages tenant-level aggregated risk entries, the
// rollups shown on a tenant dashboard as opposed to per-project findings.
type RiskSummaryService struct {
	Store store.Store
}

type RiskSummaryInput struct {
	Title    string
	Severity string
	Score    float64
}

// Create validates and stores a risk summary under the tenant.
func (s *RiskSummaryService) Create(ctx context.Context, tenantID string, in RiskSummaryInput) (domain.RiskSummary, error) {
	fe := FieldErrors{}
	if strings.TrimSpace(in.Title) == "" {
		fe.Add("title", "Title cannot be empty")
	}
	if in.Score < 0 || in.Score > 10 {
		fe.Add("score", "Score must be between 0 and 10")
	}
	if len(fe) > 0 {
		return domain.RiskSummary{}, fe
	}

	if _, err := s.Store.Tenants().GetTenantByID(ctx, tenantID); err != nil {
		return domain.RiskSummary{}, err
	}

	rs := domain.RiskSummary{
		ID:       idx.New().String(),
		TenantID: tenantID,
		Title:    strings.TrimSpace(in.Title),
		Severity: in.Severity,
		Score:    in.Score,
	}
	if err := s.Store.RiskSummaries().CreateRiskSummary(ctx, rs); err != nil {
		return domain.RiskSummary{}, err
	}
	return rs, nil
}

// Get loads a risk summary by ID.
func (s *RiskSummaryService) Get(ctx context.Context, id string) (domain.RiskSummary, error) {
	return s.Store.RiskSummaries().GetRiskSummaryByID(ctx, id)
}

// List returns all risk summaries for a tenant.
func (s *RiskSummaryService) List(ctx context.Context, tenantID string) ([]domain.RiskSummary, error) {
	return s.Store.RiskSummaries().ListRiskSummaries(ctx, tenantID)
}

// Delete removes a risk summary.
func (s *RiskSummaryService) Delete(ctx context.Context, id string) error {
	if _, err := s.Store.RiskSummaries().GetRiskSummaryByID(ctx, id); err != nil {
		return err
	}
	return s.Store.RiskSummaries().DeleteRiskSummary(ctx, id)
}
