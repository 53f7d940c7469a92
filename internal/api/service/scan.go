package service

import (
	"context"
	"errors"
	"time"

	"github.com/quollsec/scanhub/internal/api/domain"
	"github.com/quollsec/scanhub/internal/api/store"
	"github.com/quollsec/scanhub/pkg/idx"
	"github.com/quollsec/scanhub/pkg/slogx"
)

// Scan lifecycle states.
const (
	ScanStatusQueued   = "queued"
	ScanStatusRunning  = "running"
	ScanStatusFinished = "finished"
	ScanStatusFailed   = "failed"
)

// ErrTargetNotInProject is returned when a scan names a target outside the
// project's target set.
var ErrTargetNotInProject = errors.New("target is not part of the project")

type ScanService struct {
	Store store.Store
}

type ScanInput struct {
	ProjectID string
	TargetID  string
}

// Create queues a scan of one of the project's targets.
func (s *ScanService) Create(ctx context.Context, in ScanInput) (domain.Scan, error) {
	p, err := s.Store.Projects().GetProjectByID(ctx, in.ProjectID)
	if err != nil {
		return domain.Scan{}, err
	}

	member := false
	for _, id := range p.TargetIDs {
		if id == in.TargetID {
			member = true
			break
		}
	}
	if !member {
		return domain.Scan{}, ErrTargetNotInProject
	}

	scan := domain.Scan{
		ID:        idx.New().String(),
		ProjectID: in.ProjectID,
		TargetID:  in.TargetID,
		Status:    ScanStatusQueued,
	}
	if err := s.Store.Scans().CreateScan(ctx, scan); err != nil {
		return domain.Scan{}, err
	}

	slogx.FromContext(ctx).Info("scan queued", "scan_id", scan.ID, "project_id", in.ProjectID)
	return scan, nil
}

// Get loads a scan by ID.
func (s *ScanService) Get(ctx context.Context, id string) (domain.Scan, error) {
	return s.Store.Scans().GetScanByID(ctx, id)
}

// List returns all scans for a project.
func (s *ScanService) List(ctx context.Context, projectID string) ([]domain.Scan, error) {
	if _, err := s.Store.Projects().GetProjectByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.Store.Scans().ListScans(ctx, projectID)
}

// Delete removes a scan record.
func (s *ScanService) Delete(ctx context.Context, id string) error {
	if _, err := s.Store.Scans().GetScanByID(ctx, id); err != nil {
		return err
	}
	return s.Store.Scans().DeleteScan(ctx, id)
}

// MarkRunning transitions a queued scan to running.
func (s *ScanService) MarkRunning(ctx context.Context, id string) (domain.Scan, error) {
	return s.transition(ctx, id, ScanStatusQueued, ScanStatusRunning)
}

// MarkFinished transitions a running scan to finished.
func (s *ScanService) MarkFinished(ctx context.Context, id string) (domain.Scan, error) {
	return s.transition(ctx, id, ScanStatusRunning, ScanStatusFinished)
}

// MarkFailed transitions a running scan to failed.
func (s *ScanService) MarkFailed(ctx context.Context, id string) (domain.Scan, error) {
	return s.transition(ctx, id, ScanStatusRunning, ScanStatusFailed)
}

func (s *ScanService) transition(ctx context.Context, id, from, to string) (domain.Scan, error) {
	var out domain.Scan
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		scan, err := tx.Scans().GetScanByID(ctx, id)
		if err != nil {
			return err
		}
		if scan.Status != from {
			return errors.New("scan is not " + from)
		}

		now := time.Now().UTC()
		scan.Status = to
		switch to {
		case ScanStatusRunning:
			scan.StartedAt = &now
		case ScanStatusFinished, ScanStatusFailed:
			scan.FinishedAt = &now
		}

		if err := tx.Scans().UpdateScanStatus(ctx, id, to, scan.StartedAt, scan.FinishedAt); err != nil {
			return err
		}
		out = scan
		return nil
	})
	return out, err
}
