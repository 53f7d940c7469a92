package sqlite

import (
	"context"
	"time"

	"github.com/quollsec/scanhub/internal/api/domain"
)

type tenantsRepo struct {
	db DBTX
}

func (r *tenantsRepo) GetTenantByID(ctx context.Context, id string) (domain.Tenant, error) {
	var t domain.Tenant
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, user_id, created_at FROM tenants WHERE id = ?`, id).
		Scan(&t.ID, &t.Name, &t.UserID, &t.CreatedAt)
	if err != nil {
		return domain.Tenant{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tenantsRepo) GetTenantByUserID(ctx context.Context, userID string) (domain.Tenant, error) {
	var t domain.Tenant
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, user_id, created_at FROM tenants WHERE user_id = ?`, userID).
		Scan(&t.ID, &t.Name, &t.UserID, &t.CreatedAt)
	if err != nil {
		return domain.Tenant{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tenantsRepo) ExistsForUser(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM tenants WHERE user_id = ?`, userID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *tenantsRepo) CreateTenant(ctx context.Context, t domain.Tenant) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tenants (id, name, user_id, created_at) VALUES (?, ?, ?, ?)`,
		t.ID, t.Name, t.UserID, time.Now().UTC())
	return mapConstraint(err)
}
