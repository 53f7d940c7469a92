package service

import (
	"context"
	"strings"

	"github.com/quollsec/scanhub/internal/api/domain"
	"github.com/quollsec/scanhub/internal/api/store"
	"github.com/quollsec/scanhub/pkg/idx"
)

// RiskService manages per-project risk findings. Vulnerabilities share the
// exact shape and rules, so this service handles both.
type RiskService struct {
	Store store.Store
}

type FindingInput struct {
	ProjectID   string
	Description string
}

func (s *RiskService) validate(ctx context.Context, in FindingInput) error {
	fe := FieldErrors{}
	if strings.TrimSpace(in.Description) == "" {
		fe.Add("description", "Description cannot be empty")
	}
	if len(fe) > 0 {
		return fe
	}
	// Project resolution reports as not-found, not as a field error, so the
	// transport can answer 404.
	_, err := s.Store.Projects().GetProjectByID(ctx, in.ProjectID)
	return err
}

// CreateRisk validates and stores a risk finding against a project.
func (s *RiskService) CreateRisk(ctx context.Context, in FindingInput) (domain.Risk, error) {
	if err := s.validate(ctx, in); err != nil {
		return domain.Risk{}, err
	}

	r := domain.Risk{
		ID:          idx.New().String(),
		ProjectID:   in.ProjectID,
		Description: strings.TrimSpace(in.Description),
	}
	if err := s.Store.Risks().CreateRisk(ctx, r); err != nil {
		return domain.Risk{}, err
	}
	return r, nil
}

// GetRisk loads a risk by ID.
func (s *RiskService) GetRisk(ctx context.Context, id string) (domain.Risk, error) {
	return s.Store.Risks().GetRiskByID(ctx, id)
}

// ListRisks returns all risks recorded against a project.
func (s *RiskService) ListRisks(ctx context.Context, projectID string) ([]domain.Risk, error) {
	if _, err := s.Store.Projects().GetProjectByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.Store.Risks().ListRisks(ctx, projectID)
}

// DeleteRisk removes a risk.
func (s *RiskService) DeleteRisk(ctx context.Context, id string) error {
	if _, err := s.Store.Risks().GetRiskByID(ctx, id); err != nil {
		return err
	}
	return s.Store.Risks().DeleteRisk(ctx, id)
}

// CreateVulnerability validates and stores a vulnerability finding.
func (s *RiskService) CreateVulnerability(ctx context.Context, in FindingInput) (domain.Vulnerability, error) {
	if err := s.validate(ctx, in); err != nil {
		return domain.Vulnerability{}, err
	}

	v := domain.Vulnerability{
		ID:          idx.New().String(),
		ProjectID:   in.ProjectID,
		Description: strings.TrimSpace(in.Description),
	}
	if err := s.Store.Vulnerabilities().CreateVulnerability(ctx, v); err != nil {
		return domain.Vulnerability{}, err
	}
	return v, nil
}

// GetVulnerability loads a vulnerability by ID.
func (s *RiskService) GetVulnerability(ctx context.Context, id string) (domain.Vulnerability, error) {
	return s.Store.Vulnerabilities().GetVulnerabilityByID(ctx, id)
}

// ListVulnerabilities returns all vulnerabilities recorded against a project.
func (s *RiskService) ListVulnerabilities(ctx context.Context, projectID string) ([]domain.Vulnerability, error) {
	if _, err := s.Store.Projects().GetProjectByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.Store.Vulnerabilities().ListVulnerabilities(ctx, projectID)
}

// DeleteVulnerability removes a vulnerability.
func (s *RiskService) DeleteVulnerability(ctx context.Context, id string) error {
	if _, err := s.Store.Vulnerabilities().GetVulnerabilityByID(ctx, id); err != nil {
		return err
	}
	return s.Store.Vulnerabilities().DeleteVulnerability(ctx, id)
}
