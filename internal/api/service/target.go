package service

import (
	"context"
	"strings"

	"github.com/quollsec/scanhub/internal/api/domain"
	"github.com/quollsec/scanhub/internal/api/store"
	"github.com/quollsec/scanhub/pkg/idx"
)

type TargetService struct {
	Store store.Store
}

type TargetInput struct {
	Name string
	Host string
	Kind string
}

// Create validates and stores a scan target.
func (s *TargetService) Create(ctx context.Context, in TargetInput) (domain.Target, error) {
	fe := FieldErrors{}
	if strings.TrimSpace(in.Name) == "" {
		fe.Add("name", "Name cannot be empty")
	}
	if strings.TrimSpace(in.Host) == "" {
		fe.Add("host", "Host cannot be empty")
	}
	if len(fe) > 0 {
		return domain.Target{}, fe
	}

	t := domain.Target{
		ID:   idx.New().String(),
		Name: strings.TrimSpace(in.Name),
		Host: strings.TrimSpace(in.Host),
		Kind: strings.TrimSpace(in.Kind),
	}
	if err := s.Store.Targets().CreateTarget(ctx, t); err != nil {
		return domain.Target{}, err
	}
	return t, nil
}

// Get loads a target by ID.
func (s *TargetService) Get(ctx context.Context, id string) (domain.Target, error) {
	return s.Store.Targets().GetTargetByID(ctx, id)
}

// List returns all targets.
func (s *TargetService) List(ctx context.Context) ([]domain.Target, error) {
	return s.Store.Targets().ListTargets(ctx)
}

// Update rewrites a target.
func (s *TargetService) Update(ctx context.Context, id string, in TargetInput) (domain.Target, error) {
	t, err := s.Store.Targets().GetTargetByID(ctx, id)
	if err != nil {
		return domain.Target{}, err
	}

	fe := FieldErrors{}
	if strings.TrimSpace(in.Name) == "" {
		fe.Add("name", "Name cannot be empty")
	}
	if strings.TrimSpace(in.Host) == "" {
		fe.Add("host", "Host cannot be empty")
	}
	if len(fe) > 0 {
		return domain.Target{}, fe
	}

	t.Name = strings.TrimSpace(in.Name)
	t.Host = strings.TrimSpace(in.Host)
	t.Kind = strings.TrimSpace(in.Kind)

	if err := s.Store.Targets().UpdateTarget(ctx, t); err != nil {
		return domain.Target{}, err
	}
	return t, nil
}

// Delete removes a target.
func (s *TargetService) Delete(ctx context.Context, id string) error {
	if _, err := s.Store.Targets().GetTargetByID(ctx, id); err != nil {
		return err
	}
	return s.Store.Targets().DeleteTarget(ctx, id)
}
