package http

import (
	"github.com/quollsec/scanhub/internal/api/domain"
	"github.com/quollsec/scanhub/internal/api/service"
	"github.com/quollsec/scanhub/pkg/scanapi"
)

// Converters from domain models to the wire types shared with the SDK.

func toUserResponse(u domain.User) scanapi.UserResponse {
	return scanapi.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toTenantResponse(t domain.Tenant) scanapi.TenantResponse {
	return scanapi.TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		UserID:    t.UserID,
		CreatedAt: t.CreatedAt,
	}
}

func toMeResponse(p service.UserWithTenant) scanapi.MeResponse {
	out := scanapi.MeResponse{User: toUserResponse(p.User)}
	if p.Tenant != nil {
		t := toTenantResponse(*p.Tenant)
		out.Tenant = &t
	}
	return out
}

func toTenantUserResponse(tu domain.TenantUser) scanapi.TenantUserResponse {
	return scanapi.TenantUserResponse{
		ID:               tu.ID,
		TenantID:         tu.TenantID,
		Name:             tu.Name,
		OrganizationName: tu.OrganizationName,
		IsActive:         tu.IsActive,
		CreatedAt:        tu.CreatedAt,
		UpdatedAt:        tu.UpdatedAt,
	}
}

func toGroupResponse(g service.GroupWithPermissions) scanapi.GroupResponse {
	perms := g.Permissions
	if perms == nil {
		perms = []string{}
	}
	return scanapi.GroupResponse{
		ID:          g.Group.ID,
		Name:        g.Group.Name,
		Permissions: perms,
		CreatedAt:   g.Group.CreatedAt,
		UpdatedAt:   g.Group.UpdatedAt,
	}
}

func toPermissionResponse(p domain.Permission) scanapi.PermissionResponse {
	return scanapi.PermissionResponse{ID: p.ID, Name: p.Name, Codename: p.Codename}
}

func toTargetResponse(t domain.Target) scanapi.TargetResponse {
	return scanapi.TargetResponse{
		ID:        t.ID,
		Name:      t.Name,
		Host:      t.Host,
		Kind:      t.Kind,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toProjectResponse(p service.ProjectWithTargets) scanapi.ProjectResponse {
	targets := make([]scanapi.TargetResponse, 0, len(p.Targets))
	for _, t := range p.Targets {
		targets = append(targets, toTargetResponse(t))
	}
	return scanapi.ProjectResponse{
		ID:          p.Project.ID,
		TenantID:    p.Project.TenantID,
		Name:        p.Project.Name,
		Description: p.Project.Description,
		Targets:     targets,
		CreatedAt:   p.Project.CreatedAt,
		UpdatedAt:   p.Project.UpdatedAt,
	}
}

func toRiskResponse(r domain.Risk) scanapi.FindingResponse {
	return scanapi.FindingResponse{
		ID:          r.ID,
		ProjectID:   r.ProjectID,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}

func toVulnerabilityResponse(v domain.Vulnerability) scanapi.FindingResponse {
	return scanapi.FindingResponse{
		ID:          v.ID,
		ProjectID:   v.ProjectID,
		Description: v.Description,
		CreatedAt:   v.CreatedAt,
	}
}

func toScanResponse(s domain.Scan) scanapi.ScanResponse {
	return scanapi.ScanResponse{
		ID:         s.ID,
		ProjectID:  s.ProjectID,
		TargetID:   s.TargetID,
		Status:     s.Status,
		StartedAt:  s.StartedAt,
		FinishedAt: s.FinishedAt,
		CreatedAt:  s.CreatedAt,
	}
}

func toRiskSummaryResponse(rs domain.RiskSummary) scanapi.RiskSummaryResponse {
	return scanapi.RiskSummaryResponse{
		ID:        rs.ID,
		TenantID:  rs.TenantID,
		Title:     rs.Title,
		Severity:  rs.Severity,
		Score:     rs.Score,
		CreatedAt: rs.CreatedAt,
	}
}

func toTenantData(ts service.TenantStatus) scanapi.TenantData {
	return scanapi.TenantData{
		Type:     ts.Type,
		Message:  ts.Message,
		TenantID: ts.TenantID,
	}
}
