package sqlite

import (
	"context"
	"database/sql"

	"github.com/quollsec/scanhub/internal/api/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // outer DB stays open; caller commits or rolls back

// Ping is a no-op inside a transaction.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before transactions start

func (t *txStore) Users() store.Users                     { return &usersRepo{db: t.tx} }
func (t *txStore) Tenants() store.Tenants                 { return &tenantsRepo{db: t.tx} }
func (t *txStore) TenantUsers() store.TenantUsers         { return &tenantUsersRepo{db: t.tx} }
func (t *txStore) OTPs() store.OTPs                       { return &otpsRepo{db: t.tx} }
func (t *txStore) Groups() store.Groups                   { return &groupsRepo{db: t.tx} }
func (t *txStore) Permissions() store.Permissions         { return &permissionsRepo{db: t.tx} }
func (t *txStore) Projects() store.Projects               { return &projectsRepo{db: t.tx} }
func (t *txStore) Targets() store.Targets                 { return &targetsRepo{db: t.tx} }
func (t *txStore) Risks() store.Risks                     { return &risksRepo{db: t.tx} }
func (t *txStore) Vulnerabilities() store.Vulnerabilities { return &vulnerabilitiesRepo{db: t.tx} }
func (t *txStore) Scans() store.Scans                     { return &scansRepo{db: t.tx} }
func (t *txStore) RiskSummaries() store.RiskSummaries     { return &riskSummariesRepo{db: t.tx} }
