package sqlite

import (
	"context"
	"time"

	"github.com/quollsec/scanhub/internal/api/domain"
)

type tenantUsersRepo struct {
	db DBTX
}

const tenantUserColumns = `id, tenant_id, name, organization_name, is_active, created_at, updated_at`

func scanTenantUser(row interface{ Scan(...any) error }) (domain.TenantUser, error) {
	var tu domain.TenantUser
	err := row.Scan(
		&tu.ID,
		&tu.TenantID,
		&tu.Name,
		&tu.OrganizationName,
		&tu.IsActive,
		&tu.CreatedAt,
		&tu.UpdatedAt,
	)
	return tu, err
}

func (r *tenantUsersRepo) CreateTenantUser(ctx context.Context, tu domain.TenantUser) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tenant_users (id, tenant_id, name, organization_name, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		tu.ID, tu.TenantID, tu.Name, tu.OrganizationName, tu.IsActive, now, now)
	return err
}

func (r *tenantUsersRepo) GetTenantUserByID(ctx context.Context, id string) (domain.TenantUser, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+tenantUserColumns+` FROM tenant_users WHERE id = ?`, id)
	tu, err := scanTenantUser(row)
	if err != nil {
		return domain.TenantUser{}, mapNotFound(err)
	}
	return tu, nil
}

func (r *tenantUsersRepo) ListTenantUsers(ctx context.Context, tenantID string) ([]domain.TenantUser, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+tenantUserColumns+` FROM tenant_users WHERE tenant_id = ? ORDER BY created_at`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TenantUser
	for rows.Next() {
		tu, err := scanTenantUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, tu)
	}
	return out, rows.Err()
}

func (r *tenantUsersRepo) UpdateTenantUser(ctx context.Context, tu domain.TenantUser) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tenant_users SET name = ?, organization_name = ?, is_active = ?, updated_at = ? WHERE id = ?`,
		tu.Name, tu.OrganizationName, tu.IsActive, time.Now().UTC(), tu.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *tenantUsersRepo) DeleteTenantUser(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tenant_users WHERE id = ?`, id)
	return err
}
