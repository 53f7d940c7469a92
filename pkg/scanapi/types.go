package scanapi

import "time"

// ============================================================================
// Auth
// ============================================================================

// RegisterRequest is the payload for POST /v1/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username,omitempty"`
}

// TenantData reports the tenant provisioning outcome during registration.
// All fields are empty (the object serializes to {}) when provisioning was
// skipped or failed.
type TenantData struct {
	Type     string `json:"type,omitempty"`
	Message  string `json:"message,omitempty"`
	TenantID string `json:"tenant_id,omitempty"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegisterResponse is the payload returned by a successful registration.
type RegisterResponse struct {
	User       UserResponse `json:"user"`
	TenantData TenantData   `json:"tenant_data"`
}

// LoginRequest is the payload for POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries an access token plus the authenticated user. It is
// returned by login and by OTP verification.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// VerifyOTPRequest is the payload for POST /v1/auth/verify-otp.
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// ChangePasswordRequest is the payload for POST /v1/auth/change-password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// ============================================================================
// Users and tenants
// ============================================================================

// TenantResponse is the public view of a tenant.
type TenantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// MeResponse is the profile read model: the user plus their tenant, when
// one has been provisioned.
type MeResponse struct {
	User   UserResponse    `json:"user"`
	Tenant *TenantResponse `json:"tenant,omitempty"`
}

// UpdateProfileRequest is the payload for PUT /v1/users/me.
type UpdateProfileRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// TenantUserRequest is the create/update payload for tenant users. IsActive
// is any on purpose: the server rejects non-boolean values rather than
// coercing truthy strings.
type TenantUserRequest struct {
	Name             string `json:"name"`
	OrganizationName string `json:"organization_name"`
	IsActive         any    `json:"is_active,omitempty"`
}

// TenantUserResponse is the public view of a tenant user.
type TenantUserResponse struct {
	ID               string    `json:"id"`
	TenantID         string    `json:"tenant_id"`
	Name             string    `json:"name"`
	OrganizationName string    `json:"organization_name"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ============================================================================
// MFA
// ============================================================================

// MFAEnrollResponse carries the TOTP provisioning material, returned once.
type MFAEnrollResponse struct {
	Secret          string `json:"secret"`
	ProvisioningURI string `json:"provisioning_uri"`
}

// MFAConfirmRequest is the payload for POST /v1/users/me/mfa/confirm.
type MFAConfirmRequest struct {
	Code string `json:"code"`
}

// ============================================================================
// Groups and permissions
// ============================================================================

// GroupRequest is the create/update payload for groups. On update, a nil
// Name keeps the current name and nil Permissions keeps the current set.
type GroupRequest struct {
	Name        *string  `json:"name,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}

// GroupResponse is the public view of a group with its permission names.
type GroupResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PermissionResponse is the public view of a permission.
type PermissionResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Codename string `json:"codename"`
}

// ============================================================================
// Targets, projects, findings, scans
// ============================================================================

// TargetRequest is the create/update payload for targets.
type TargetRequest struct {
	Name string `json:"name"`
	Host string `json:"host"`
	Kind string `json:"kind,omitempty"`
}

// TargetResponse is the public view of a scan target.
type TargetResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Host      string    `json:"host"`
	Kind      string    `json:"kind,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProjectRequest is the create/update payload for projects. Targets must
// name at least one existing target ID.
type ProjectRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Targets     []string `json:"targets"`
}

// ProjectResponse is the public view of a project with targets expanded.
type ProjectResponse struct {
	ID          string           `json:"id"`
	TenantID    string           `json:"tenant_id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Targets     []TargetResponse `json:"targets"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// FindingRequest is the create payload for risks and vulnerabilities.
type FindingRequest struct {
	Description string `json:"description"`
}

// FindingResponse is the public view of a risk or vulnerability finding.
type FindingResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ScanRequest is the payload for queueing a scan.
type ScanRequest struct {
	TargetID string `json:"target_id"`
}

// ScanResponse is the public view of a scan.
type ScanResponse struct {
	ID         string     `json:"id"`
	ProjectID  string     `json:"project_id"`
	TargetID   string     `json:"target_id"`
	Status     string     `json:"status"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// RiskSummaryRequest is the create payload for tenant-level risk rollups.
type RiskSummaryRequest struct {
	Title    string  `json:"title"`
	Severity string  `json:"severity,omitempty"`
	Score    float64 `json:"score"`
}

// RiskSummaryResponse is the public view of a tenant-level risk rollup.
type RiskSummaryResponse struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Title     string    `json:"title"`
	Severity  string    `json:"severity,omitempty"`
	Score     float64   `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}
