package service

import (
	"context"
	"errors"
	"strings"

	"github.com/quollsec/scanhub/internal/api/domain"
	"github.com/quollsec/scanhub/internal/api/store"
	"github.com/quollsec/scanhub/pkg/idx"
	"github.com/quollsec/scanhub/pkg/slogx"
)

type ProjectService struct {
	Store store.Store
}

type ProjectInput struct {
	Name        string
	Description string
	TargetIDs   []string
}

// ProjectWithTargets is the project read model: targets are expanded into
// full objects rather than bare IDs.
type ProjectWithTargets struct {
	Project domain.Project
	Targets []domain.Target
}

func (s *ProjectService) validate(ctx context.Context, in ProjectInput) error {
	fe := FieldErrors{}
	if strings.TrimSpace(in.Name) == "" {
		fe.Add("name", "Name cannot be empty")
	}
	if len(in.TargetIDs) == 0 {
		fe.Add("targets", "Targets list cannot be empty")
	}
	for _, id := range in.TargetIDs {
		if _, err := s.Store.Targets().GetTargetByID(ctx, id); errors.Is(err, store.ErrNotFound) {
			fe.Add("targets", "Target "+id+" does not exist")
		} else if err != nil {
			return err
		}
	}
	if len(fe) > 0 {
		return fe
	}
	return nil
}

// Create validates and stores a project with its target set. Every target ID
// must resolve; a single unknown ID fails the whole request.
func (s *ProjectService) Create(ctx context.Context, tenantID string, in ProjectInput) (ProjectWithTargets, error) {
	if err := s.validate(ctx, in); err != nil {
		return ProjectWithTargets{}, err
	}

	p := domain.Project{
		ID:          idx.New().String(),
		TenantID:    tenantID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		TargetIDs:   in.TargetIDs,
	}
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Projects().CreateProject(ctx, p); err != nil {
			return err
		}
		return tx.Projects().SetProjectTargets(ctx, p.ID, in.TargetIDs)
	})
	if err != nil {
		return ProjectWithTargets{}, err
	}

	slogx.FromContext(ctx).Info("project created", "project_id", p.ID, "tenant_id", tenantID)
	return s.Get(ctx, p.ID)
}

// Get loads a project with its targets expanded.
func (s *ProjectService) Get(ctx context.Context, id string) (ProjectWithTargets, error) {
	p, err := s.Store.Projects().GetProjectByID(ctx, id)
	if err != nil {
		return ProjectWithTargets{}, err
	}
	targets, err := s.Store.Targets().ListTargetsByIDs(ctx, p.TargetIDs)
	if err != nil {
		return ProjectWithTargets{}, err
	}
	return ProjectWithTargets{Project: p, Targets: targets}, nil
}

// List returns all projects for a tenant, with targets expanded.
func (s *ProjectService) List(ctx context.Context, tenantID string) ([]ProjectWithTargets, error) {
	projects, err := s.Store.Projects().ListProjects(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	out := make([]ProjectWithTargets, 0, len(projects))
	for _, p := range projects {
		targets, err := s.Store.Targets().ListTargetsByIDs(ctx, p.TargetIDs)
		if err != nil {
			return nil, err
		}
		out = append(out, ProjectWithTargets{Project: p, Targets: targets})
	}
	return out, nil
}

// Update rewrites a project and replaces its target set atomically.
func (s *ProjectService) Update(ctx context.Context, id string, in ProjectInput) (ProjectWithTargets, error) {
	p, err := s.Store.Projects().GetProjectByID(ctx, id)
	if err != nil {
		return ProjectWithTargets{}, err
	}
	if err := s.validate(ctx, in); err != nil {
		return ProjectWithTargets{}, err
	}

	p.Name = strings.TrimSpace(in.Name)
	p.Description = in.Description
	p.TargetIDs = in.TargetIDs

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Projects().UpdateProject(ctx, p); err != nil {
			return err
		}
		return tx.Projects().SetProjectTargets(ctx, id, in.TargetIDs)
	})
	if err != nil {
		return ProjectWithTargets{}, err
	}
	return s.Get(ctx, id)
}

// Delete removes a project and its target links.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if _, err := s.Store.Projects().GetProjectByID(ctx, id); err != nil {
		return err
	}
	return s.Store.Projects().DeleteProject(ctx, id)
}
