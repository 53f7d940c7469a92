package domain

import "time"

// Target is a scan subject: a host, URL or network range a scan runs against.
type Target struct {
	ID        string
	Name      string
	Host      string
	Kind      string // e.g. "web", "network", "api"
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Project groups targets under a tenant. TargetIDs is the many-to-many set;
// reads materialize the full Target records.
type Project struct {
	ID          string
	TenantID    string
	Name        string
	Description string
	TargetIDs   []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
