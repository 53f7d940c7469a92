package scanapi

import (
	"context"
	"net/http"
)

// CreateRisk records a risk finding against a project.
func (s *Session) CreateRisk(ctx context.Context, projectID string, req FindingRequest) (FindingResponse, error) {
	var out FindingResponse
	err := s.postJSON(ctx, "/v1/projects/"+projectID+"/risks", req, &out, http.StatusCreated)
	return out, err
}

// ListRisks returns the risks recorded against a project.
func (s *Session) ListRisks(ctx context.Context, projectID string) ([]FindingResponse, error) {
	var out []FindingResponse
	err := s.getJSON(ctx, "/v1/projects/"+projectID+"/risks", &out)
	return out, err
}

// DeleteRisk removes a risk.
func (s *Session) DeleteRisk(ctx context.Context, id string) error {
	return s.delete(ctx, "/v1/risks/"+id)
}

// CreateVulnerability records a vulnerability finding against a project.
func (s *Session) CreateVulnerability(ctx context.Context, projectID string, req FindingRequest) (FindingResponse, error) {
	var out FindingResponse
	err := s.postJSON(ctx, "/v1/projects/"+projectID+"/vulnerabilities", req, &out, http.StatusCreated)
	return out, err
}

// ListVulnerabilities returns the vulnerabilities recorded against a project.
func (s *Session) ListVulnerabilities(ctx context.Context, projectID string) ([]FindingResponse, error) {
	var out []FindingResponse
	err := s.getJSON(ctx, "/v1/projects/"+projectID+"/vulnerabilities", &out)
	return out, err
}

// DeleteVulnerability removes a vulnerability.
func (s *Session) DeleteVulnerability(ctx context.Context, id string) error {
	return s.delete(ctx, "/v1/vulnerabilities/"+id)
}

// CreateScan queues a scan of one of the project's targets.
func (s *Session) CreateScan(ctx context.Context, projectID string, req ScanRequest) (ScanResponse, error) {
	var out ScanResponse
	err := s.postJSON(ctx, "/v1/projects/"+projectID+"/scans", req, &out, http.StatusCreated)
	return out, err
}

// GetScan loads a scan by ID.
func (s *Session) GetScan(ctx context.Context, id string) (ScanResponse, error) {
	var out ScanResponse
	err := s.getJSON(ctx, "/v1/scans/"+id, &out)
	return out, err
}

// ListScans returns all scans for a project.
func (s *Session) ListScans(ctx context.Context, projectID string) ([]ScanResponse, error) {
	var out []ScanResponse
	err := s.getJSON(ctx, "/v1/projects/"+projectID+"/scans", &out)
	return out, err
}

// StartScan transitions a queued scan to running.
func (s *Session) StartScan(ctx context.Context, id string) (ScanResponse, error) {
	var out ScanResponse
	err := s.postJSON(ctx, "/v1/scans/"+id+"/start", nil, &out, http.StatusOK)
	return out, err
}

// FinishScan transitions a running scan to finished.
func (s *Session) FinishScan(ctx context.Context, id string) (ScanResponse, error) {
	var out ScanResponse
	err := s.postJSON(ctx, "/v1/scans/"+id+"/finish", nil, &out, http.StatusOK)
	return out, err
}

// FailScan transitions a running scan to failed.
func (s *Session) FailScan(ctx context.Context, id string) (ScanResponse, error) {
	var out ScanResponse
	err := s.postJSON(ctx, "/v1/scans/"+id+"/fail", nil, &out, http.StatusOK)
	return out, err
}

// CreateRiskSummary stores a tenant-level risk rollup.
func (s *Session) CreateRiskSummary(ctx context.Context, req RiskSummaryRequest) (RiskSummaryResponse, error) {
	var out RiskSummaryResponse
	err := s.postJSON(ctx, "/v1/risk-summaries", req, &out, http.StatusCreated)
	return out, err
}

// GetRiskSummary loads a risk rollup by ID.
func (s *Session) GetRiskSummary(ctx context.Context, id string) (RiskSummaryResponse, error) {
	var out RiskSummaryResponse
	err := s.getJSON(ctx, "/v1/risk-summaries/"+id, &out)
	return out, err
}

// ListRiskSummaries returns the tenant's risk rollups.
func (s *Session) ListRiskSummaries(ctx context.Context) ([]RiskSummaryResponse, error) {
	var out []RiskSummaryResponse
	err := s.getJSON(ctx, "/v1/risk-summaries", &out)
	return out, err
}

// DeleteRiskSummary removes a risk rollup.
func (s *Session) DeleteRiskSummary(ctx context.Context, id string) error {
	return s.delete(ctx, "/v1/risk-summaries/"+id)
}
