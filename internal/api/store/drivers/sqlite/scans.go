package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/quollsec/scanhub/internal/api/domain"
)

type scansRepo struct {
	db DBTX
}

const scanColumns = `id, project_id, target_id, status, started_at, finished_at, created_at`

func scanScan(row interface{ Scan(...any) error }) (domain.Scan, error) {
	var (
		s        domain.Scan
		started  sql.NullTime
		finished sql.NullTime
	)
	err := row.Scan(&s.ID, &s.ProjectID, &s.TargetID, &s.Status, &started, &finished, &s.CreatedAt)
	if err != nil {
		return domain.Scan{}, err
	}
	s.StartedAt = mapNullTimePtr(started)
	s.FinishedAt = mapNullTimePtr(finished)
	return s, nil
}

func (r *scansRepo) CreateScan(ctx context.Context, s domain.Scan) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO scans (id, project_id, target_id, status, started_at, finished_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.ProjectID, s.TargetID, s.Status,
		mapOptionalTime(s.StartedAt), mapOptionalTime(s.FinishedAt), time.Now().UTC())
	return err
}

func (r *scansRepo) GetScanByID(ctx context.Context, id string) (domain.Scan, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+scanColumns+` FROM scans WHERE id = ?`, id)
	s, err := scanScan(row)
	if err != nil {
		return domain.Scan{}, mapNotFound(err)
	}
	return s, nil
}

func (r *scansRepo) ListScans(ctx context.Context, projectID string) ([]domain.Scan, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+scanColumns+` FROM scans WHERE project_id = ? ORDER BY created_at`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Scan
	for rows.Next() {
		s, err := scanScan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *scansRepo) UpdateScanStatus(ctx context.Context, id, status string, startedAt, finishedAt *time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE scans SET status = ?, started_at = ?, finished_at = ? WHERE id = ?`,
		status, mapOptionalTime(startedAt), mapOptionalTime(finishedAt), id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *scansRepo) DeleteScan(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM scans WHERE id = ?`, id)
	return err
}
