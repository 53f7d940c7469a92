package sqlite

import (
	"context"
	"time"

	"github.com/quollsec/scanhub/internal/api/domain"
)

type groupsRepo struct {
	db DBTX
}

func (r *groupsRepo) CreateGroup(ctx context.Context, g domain.Group) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO groups (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		g.ID, g.Name, now, now)
	return mapConstraint(err)
}

func (r *groupsRepo) GetGroupByID(ctx context.Context, id string) (domain.Group, error) {
	var g domain.Group
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM groups WHERE id = ?`, id).
		Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return domain.Group{}, mapNotFound(err)
	}
	return g, nil
}

func (r *groupsRepo) ListGroups(ctx context.Context) ([]domain.Group, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM groups ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Group
	for rows.Next() {
		var g domain.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *groupsRepo) UpdateGroupName(ctx context.Context, groupID, name string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE groups SET name = ?, updated_at = ? WHERE id = ?`,
		name, time.Now().UTC(), groupID)
	if err != nil {
		return mapConstraint(err)
	}
	return requireRowAffected(res)
}

func (r *groupsRepo) DeleteGroup(ctx context.Context, groupID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM groups WHERE id = ?`, groupID)
	return err
}

func (r *groupsRepo) ListGroupPermissionNames(ctx context.Context, groupID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.name FROM permissions p
		 JOIN group_permissions gp ON gp.permission_id = p.id
		 WHERE gp.group_id = ?
		 ORDER BY p.name`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *groupsRepo) ClearGroupPermissions(ctx context.Context, groupID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM group_permissions WHERE group_id = ?`, groupID)
	return err
}

func (r *groupsRepo) AddGroupPermission(ctx context.Context, groupID, permissionID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO group_permissions (group_id, permission_id) VALUES (?, ?)`,
		groupID, permissionID)
	return err
}
