package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/quollsec/scanhub/internal/api/domain"
)

type targetsRepo struct {
	db DBTX
}

const targetColumns = `id, name, host, kind, created_at, updated_at`

func scanTarget(row interface{ Scan(...any) error }) (domain.Target, error) {
	var t domain.Target
	err := row.Scan(&t.ID, &t.Name, &t.Host, &t.Kind, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *targetsRepo) CreateTarget(ctx context.Context, t domain.Target) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO targets (id, name, host, kind, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.Host, t.Kind, now, now)
	return err
}

func (r *targetsRepo) GetTargetByID(ctx context.Context, id string) (domain.Target, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+targetColumns+` FROM targets WHERE id = ?`, id)
	t, err := scanTarget(row)
	if err != nil {
		return domain.Target{}, mapNotFound(err)
	}
	return t, nil
}

func (r *targetsRepo) ListTargets(ctx context.Context) ([]domain.Target, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+targetColumns+` FROM targets ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Target
	for rows.Next() {
		t, err := scanTarget(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *targetsRepo) ListTargetsByIDs(ctx context.Context, ids []string) ([]domain.Target, error) {
	if len(ids) == 0 {
		return []domain.Target{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+targetColumns+` FROM targets WHERE id IN (`+placeholders+`) ORDER BY id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Target{}
	for rows.Next() {
		t, err := scanTarget(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *targetsRepo) UpdateTarget(ctx context.Context, t domain.Target) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE targets SET name = ?, host = ?, kind = ?, updated_at = ? WHERE id = ?`,
		t.Name, t.Host, t.Kind, time.Now().UTC(), t.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *targetsRepo) DeleteTarget(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM targets WHERE id = ?`, id)
	return err
}
