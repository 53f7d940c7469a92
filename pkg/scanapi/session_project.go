package scanapi

import (
	"context"
	"net/http"
)

// CreateTarget stores a scan target.
func (s *Session) CreateTarget(ctx context.Context, req TargetRequest) (TargetResponse, error) {
	var out TargetResponse
	err := s.postJSON(ctx, "/v1/targets", req, &out, http.StatusCreated)
	return out, err
}

// GetTarget loads a target by ID.
func (s *Session) GetTarget(ctx context.Context, id string) (TargetResponse, error) {
	var out TargetResponse
	err := s.getJSON(ctx, "/v1/targets/"+id, &out)
	return out, err
}

// ListTargets returns all targets.
func (s *Session) ListTargets(ctx context.Context) ([]TargetResponse, error) {
	var out []TargetResponse
	err := s.getJSON(ctx, "/v1/targets", &out)
	return out, err
}

// UpdateTarget rewrites a target.
func (s *Session) UpdateTarget(ctx context.Context, id string, req TargetRequest) (TargetResponse, error) {
	var out TargetResponse
	err := s.putJSON(ctx, "/v1/targets/"+id, req, &out)
	return out, err
}

// DeleteTarget removes a target.
func (s *Session) DeleteTarget(ctx context.Context, id string) error {
	return s.delete(ctx, "/v1/targets/"+id)
}

// CreateProject stores a project with its target set.
func (s *Session) CreateProject(ctx context.Context, req ProjectRequest) (ProjectResponse, error) {
	var out ProjectResponse
	err := s.postJSON(ctx, "/v1/projects", req, &out, http.StatusCreated)
	return out, err
}

// GetProject loads a project with targets expanded.
func (s *Session) GetProject(ctx context.Context, id string) (ProjectResponse, error) {
	var out ProjectResponse
	err := s.getJSON(ctx, "/v1/projects/"+id, &out)
	return out, err
}

// ListProjects returns the tenant's projects with targets expanded.
func (s *Session) ListProjects(ctx context.Context) ([]ProjectResponse, error) {
	var out []ProjectResponse
	err := s.getJSON(ctx, "/v1/projects", &out)
	return out, err
}

// UpdateProject rewrites a project and replaces its target set.
func (s *Session) UpdateProject(ctx context.Context, id string, req ProjectRequest) (ProjectResponse, error) {
	var out ProjectResponse
	err := s.putJSON(ctx, "/v1/projects/"+id, req, &out)
	return out, err
}

// DeleteProject removes a project.
func (s *Session) DeleteProject(ctx context.Context, id string) error {
	return s.delete(ctx, "/v1/projects/"+id)
}
