package sqlite

import (
	"context"

	"github.com/quollsec/scanhub/internal/api/domain"
)

type permissionsRepo struct {
	db DBTX
}

func (r *permissionsRepo) CreatePermission(ctx context.Context, p domain.Permission) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO permissions (id, name, codename) VALUES (?, ?, ?)`,
		p.ID, p.Name, p.Codename)
	return mapConstraint(err)
}

func (r *permissionsRepo) GetPermissionByName(ctx context.Context, name string) (domain.Permission, error) {
	var p domain.Permission
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, codename FROM permissions WHERE name = ?`, name).
		Scan(&p.ID, &p.Name, &p.Codename)
	if err != nil {
		return domain.Permission{}, mapNotFound(err)
	}
	return p, nil
}

func (r *permissionsRepo) ListPermissions(ctx context.Context) ([]domain.Permission, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, codename FROM permissions ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Permission
	for rows.Next() {
		var p domain.Permission
		if err := rows.Scan(&p.ID, &p.Name, &p.Codename); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
