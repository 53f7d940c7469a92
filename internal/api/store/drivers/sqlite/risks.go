package sqlite

import (
	"context"
	"time"

	"github.com/quollsec/scanhub/internal/api/domain"
)

type risksRepo struct {
	db DBTX
}

func (r *risksRepo) CreateRisk(ctx context.Context, risk domain.Risk) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO risks (id, project_id, description, created_at) VALUES (?, ?, ?, ?)`,
		risk.ID, risk.ProjectID, risk.Description, time.Now().UTC())
	return err
}

func (r *risksRepo) GetRiskByID(ctx context.Context, id string) (domain.Risk, error) {
	var risk domain.Risk
	err := r.db.QueryRowContext(ctx,
		`SELECT id, project_id, description, created_at FROM risks WHERE id = ?`, id).
		Scan(&risk.ID, &risk.ProjectID, &risk.Description, &risk.CreatedAt)
	if err != nil {
		return domain.Risk{}, mapNotFound(err)
	}
	return risk, nil
}

func (r *risksRepo) ListRisks(ctx context.Context, projectID string) ([]domain.Risk, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, description, created_at FROM risks WHERE project_id = ? ORDER BY created_at`,
		projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Risk
	for rows.Next() {
		var risk domain.Risk
		if err := rows.Scan(&risk.ID, &risk.ProjectID, &risk.Description, &risk.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, risk)
	}
	return out, rows.Err()
}

func (r *risksRepo) DeleteRisk(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM risks WHERE id = ?`, id)
	return err
}
