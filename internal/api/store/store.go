package store

import (
	"context"
	"errors"
	"time"

	"github.com/quollsec/scanhub/internal/api/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and to keep transactions explicit.
type Store interface {
	Users() Users
	Tenants() Tenants
	TenantUsers() TenantUsers
	OTPs() OTPs
	Groups() Groups
	Permissions() Permissions
	Projects() Projects
	Targets() Targets
	Risks() Risks
	Vulnerabilities() Vulnerabilities
	Scans() Scans
	RiskSummaries() RiskSummaries

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Preferred over
	// Tx for multi-step operations that must be atomic (OTP consumption,
	// permission replacement, project target sets).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail returns the most recently created user with the email.
	// Duplicate inactive rows are permitted, so "most recent" is the row a
	// login or verification attempt refers to.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// ExistsActiveEmail reports whether an *active* user owns the email.
	// Inactive duplicates do not count (re-registration before verification).
	ExistsActiveEmail(ctx context.Context, email string) (bool, error)

	// ExistsEmail reports whether any user, active or not, owns the email.
	ExistsEmail(ctx context.Context, email string) (bool, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// ReplaceUserCredentials overwrites email and password hash of an
	// existing row and forces is_active to false. Used by the registration
	// upsert path on username collision.
	ReplaceUserCredentials(ctx context.Context, userID, email, passwordHash string) error

	// ActivateUser flips is_active to true.
	ActivateUser(ctx context.Context, userID string) error

	UpdatePasswordHash(ctx context.Context, userID, newHash string) error

	// UpdateProfile sets email and full name.
	UpdateProfile(ctx context.Context, userID, email, fullName string) error

	UpdateMFASecret(ctx context.Context, userID, secret string) error

	// ConfirmMFA stamps the user as having confirmed a TOTP code.
	ConfirmMFA(ctx context.Context, userID string) error

	DeleteUser(ctx context.Context, userID string) error
}

type Tenants interface {
	GetTenantByID(ctx context.Context, id string) (domain.Tenant, error)
	GetTenantByUserID(ctx context.Context, userID string) (domain.Tenant, error)

	// ExistsForUser reports whether a tenant already exists for the user.
	ExistsForUser(ctx context.Context, userID string) (bool, error)

	CreateTenant(ctx context.Context, t domain.Tenant) error
}

type TenantUsers interface {
	CreateTenantUser(ctx context.Context, tu domain.TenantUser) error
	GetTenantUserByID(ctx context.Context, id string) (domain.TenantUser, error)
	ListTenantUsers(ctx context.Context, tenantID string) ([]domain.TenantUser, error)
	UpdateTenantUser(ctx context.Context, tu domain.TenantUser) error
	DeleteTenantUser(ctx context.Context, id string) error
}

type OTPs interface {
	CreateOTP(ctx context.Context, otp domain.UserOTP) error

	// ConsumeOTP atomically deactivates the matching active code for the
	// user and reports whether a code was consumed. The guard on is_active
	// makes concurrent double-spends lose the race.
	ConsumeOTP(ctx context.Context, userID, code string) (bool, error)

	// DeactivateUserOTPs invalidates all active codes for a user, e.g.
	// before issuing a fresh one.
	DeactivateUserOTPs(ctx context.Context, userID string) error

	// DeleteStaleOTPs removes expired and consumed codes (housekeeping).
	DeleteStaleOTPs(ctx context.Context) error
}

type Groups interface {
	CreateGroup(ctx context.Context, g domain.Group) error
	GetGroupByID(ctx context.Context, id string) (domain.Group, error)
	ListGroups(ctx context.Context) ([]domain.Group, error)
	UpdateGroupName(ctx context.Context, groupID, name string) error
	DeleteGroup(ctx context.Context, groupID string) error

	// ListGroupPermissionNames returns the flat set of permission names
	// owned by the group, ordered by name.
	ListGroupPermissionNames(ctx context.Context, groupID string) ([]string, error)

	// ClearGroupPermissions removes all permission links for the group.
	ClearGroupPermissions(ctx context.Context, groupID string) error

	// AddGroupPermission links a permission to the group.
	AddGroupPermission(ctx context.Context, groupID, permissionID string) error
}

type Permissions interface {
	CreatePermission(ctx context.Context, p domain.Permission) error
	GetPermissionByName(ctx context.Context, name string) (domain.Permission, error)
	ListPermissions(ctx context.Context) ([]domain.Permission, error)
}

type Projects interface {
	CreateProject(ctx context.Context, p domain.Project) error
	GetProjectByID(ctx context.Context, id string) (domain.Project, error)
	ListProjects(ctx context.Context, tenantID string) ([]domain.Project, error)
	UpdateProject(ctx context.Context, p domain.Project) error
	DeleteProject(ctx context.Context, id string) error

	// SetProjectTargets replaces the project's target set.
	SetProjectTargets(ctx context.Context, projectID string, targetIDs []string) error

	// ListProjectTargetIDs returns the target IDs linked to the project.
	ListProjectTargetIDs(ctx context.Context, projectID string) ([]string, error)
}

type Targets interface {
	CreateTarget(ctx context.Context, t domain.Target) error
	GetTargetByID(ctx context.Context, id string) (domain.Target, error)
	ListTargets(ctx context.Context) ([]domain.Target, error)

	// ListTargetsByIDs returns the targets for the given IDs, in ID order.
	// IDs with no matching row are simply absent from the result.
	ListTargetsByIDs(ctx context.Context, ids []string) ([]domain.Target, error)

	UpdateTarget(ctx context.Context, t domain.Target) error
	DeleteTarget(ctx context.Context, id string) error
}

type Risks interface {
	CreateRisk(ctx context.Context, r domain.Risk) error
	GetRiskByID(ctx context.Context, id string) (domain.Risk, error)
	ListRisks(ctx context.Context, projectID string) ([]domain.Risk, error)
	DeleteRisk(ctx context.Context, id string) error
}

type Vulnerabilities interface {
	CreateVulnerability(ctx context.Context, v domain.Vulnerability) error
	GetVulnerabilityByID(ctx context.Context, id string) (domain.Vulnerability, error)
	ListVulnerabilities(ctx context.Context, projectID string) ([]domain.Vulnerability, error)
	DeleteVulnerability(ctx context.Context, id string) error
}

type Scans interface {
	CreateScan(ctx context.Context, s domain.Scan) error
	GetScanByID(ctx context.Context, id string) (domain.Scan, error)
	ListScans(ctx context.Context, projectID string) ([]domain.Scan, error)

	// UpdateScanStatus rewrites the lifecycle fields of a scan.
	UpdateScanStatus(ctx context.Context, id, status string, startedAt, finishedAt *time.Time) error

	DeleteScan(ctx context.Context, id string) error
}

type RiskSummaries interface {
	CreateRiskSummary(ctx context.Context, rs domain.RiskSummary) error
	GetRiskSummaryByID(ctx context.Context, id string) (domain.RiskSummary, error)
	ListRiskSummaries(ctx context.Context, tenantID string) ([]domain.RiskSummary, error)
	DeleteRiskSummary(ctx context.Context, id string) error
}
