package domain

import "time"

// Tenant is the organizational unit owning users and projects. One tenant is
// provisioned per user at registration, named "<email>_tenant".
type Tenant struct {
	ID        string
	Name      string
	UserID    string // owning user
	CreatedAt time.Time
}

type TenantUser struct {
	ID               string
	TenantID         string
	Name             string
	OrganizationName string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
