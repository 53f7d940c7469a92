package domain

import "time"

// Scan is a scan run produced by the scanning engine. The engine itself is an
// external collaborator; this service only shapes its records.
type Scan struct {
	ID         string
	ProjectID  string
	TargetID   string
	Status     string // e.g. "queued", "running", "finished", "failed"
	StartedAt  *time.Time
	FinishedAt *time.Time
	CreatedAt  time.Time
}

// Risk is a risk finding attached to a project.
type Risk struct {
	ID          string
	ProjectID   string
	Description string
	CreatedAt   time.Time
}

// Vulnerability is a vulnerability finding attached to a project.
type Vulnerability struct {
	ID          string
	ProjectID   string
	Description string
	CreatedAt   time.Time
}

// RiskSummary is a tenant-level aggregate risk record, written by the
// scanning engine and passed through unvalidated.
type RiskSummary struct {
	ID        string
	TenantID  string
	Title     string
	Severity  string // e.g. "low", "medium", "high", "critical"
	Score     float64
	CreatedAt time.Time
}
