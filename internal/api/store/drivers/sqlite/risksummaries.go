package sqlite

import (
	"context"
	"time"

	"github.com/quollsec/scanhub/internal/api/domain"
)

type riskSummariesRepo struct {
	db DBTX
}

func (r *riskSummariesRepo) CreateRiskSummary(ctx context.Context, rs domain.RiskSummary) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO risk_summaries (id, tenant_id, title, severity, score, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rs.ID, rs.TenantID, rs.Title, rs.Severity, rs.Score, time.Now().UTC())
	return err
}

func (r *riskSummariesRepo) GetRiskSummaryByID(ctx context.Context, id string) (domain.RiskSummary, error) {
	var rs domain.RiskSummary
	err := r.db.QueryRowContext(ctx,
		`SELECT id, tenant_id, title, severity, score, created_at FROM risk_summaries WHERE id = ?`, id).
		Scan(&rs.ID, &rs.TenantID, &rs.Title, &rs.Severity, &rs.Score, &rs.CreatedAt)
	if err != nil {
		return domain.RiskSummary{}, mapNotFound(err)
	}
	return rs, nil
}

func (r *riskSummariesRepo) ListRiskSummaries(ctx context.Context, tenantID string) ([]domain.RiskSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, tenant_id, title, severity, score, created_at
		 FROM risk_summaries WHERE tenant_id = ? ORDER BY created_at`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RiskSummary
	for rows.Next() {
		var rs domain.RiskSummary
		if err := rows.Scan(&rs.ID, &rs.TenantID, &rs.Title, &rs.Severity, &rs.Score, &rs.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rs)
	}
	return out, rows.Err()
}

func (r *riskSummariesRepo) DeleteRiskSummary(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM risk_summaries WHERE id = ?`, id)
	return err
}
