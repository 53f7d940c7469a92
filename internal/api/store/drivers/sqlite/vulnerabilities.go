package sqlite

import (
	"context"
	"time"

	"github.com/quollsec/scanhub/internal/api/domain"
)

type vulnerabilitiesRepo struct {
	db DBTX
}

func (r *vulnerabilitiesRepo) CreateVulnerability(ctx context.Context, v domain.Vulnerability) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO vulnerabilities (id, project_id, description, created_at) VALUES (?, ?, ?, ?)`,
		v.ID, v.ProjectID, v.Description, time.Now().UTC())
	return err
}

func (r *vulnerabilitiesRepo) GetVulnerabilityByID(ctx context.Context, id string) (domain.Vulnerability, error) {
	var v domain.Vulnerability
	err := r.db.QueryRowContext(ctx,
		`SELECT id, project_id, description, created_at FROM vulnerabilities WHERE id = ?`, id).
		Scan(&v.ID, &v.ProjectID, &v.Description, &v.CreatedAt)
	if err != nil {
		return domain.Vulnerability{}, mapNotFound(err)
	}
	return v, nil
}

func (r *vulnerabilitiesRepo) ListVulnerabilities(ctx context.Context, projectID string) ([]domain.Vulnerability, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, description, created_at FROM vulnerabilities
		 WHERE project_id = ? ORDER BY created_at`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Vulnerability
	for rows.Next() {
		var v domain.Vulnerability
		if err := rows.Scan(&v.ID, &v.ProjectID, &v.Description, &v.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *vulnerabilitiesRepo) DeleteVulnerability(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM vulnerabilities WHERE id = ?`, id)
	return err
}
