package sqlite

import (
	"context"
	"time"

	"github.com/quollsec/scanhub/internal/api/domain"
)

type projectsRepo struct {
	db DBTX
}

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (id, tenant_id, name, description, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.TenantID, p.Name, p.Description, now, now)
	return err
}

func (r *projectsRepo) GetProjectByID(ctx context.Context, id string) (domain.Project, error) {
	var p domain.Project
	err := r.db.QueryRowContext(ctx,
		`SELECT id, tenant_id, name, description, created_at, updated_at FROM projects WHERE id = ?`, id).
		Scan(&p.ID, &p.TenantID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}

	p.TargetIDs, err = r.ListProjectTargetIDs(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	return p, nil
}

func (r *projectsRepo) ListProjects(ctx context.Context, tenantID string) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, tenant_id, name, description, created_at, updated_at
		 FROM projects WHERE tenant_id = ? ORDER BY created_at`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.TenantID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		out[i].TargetIDs, err = r.ListProjectTargetIDs(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *projectsRepo) UpdateProject(ctx context.Context, p domain.Project) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET name = ?, description = ?, updated_at = ? WHERE id = ?`,
		p.Name, p.Description, time.Now().UTC(), p.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *projectsRepo) DeleteProject(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	return err
}

func (r *projectsRepo) SetProjectTargets(ctx context.Context, projectID string, targetIDs []string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM project_targets WHERE project_id = ?`, projectID); err != nil {
		return err
	}
	for _, targetID := range targetIDs {
		if _, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO project_targets (project_id, target_id) VALUES (?, ?)`,
			projectID, targetID); err != nil {
			return err
		}
	}
	return nil
}

func (r *projectsRepo) ListProjectTargetIDs(ctx context.Context, projectID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT target_id FROM project_targets WHERE project_id = ? ORDER BY target_id`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
