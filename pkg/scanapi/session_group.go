package scanapi

import (
	"context"
	"net/http"
)

// CreateGroup stores a new group, optionally with an initial permission set.
func (s *Session) CreateGroup(ctx context.Context, req GroupRequest) (GroupResponse, error) {
	var out GroupResponse
	err := s.postJSON(ctx, "/v1/groups", req, &out, http.StatusCreated)
	return out, err
}

// GetGroup loads a group with its permission names.
func (s *Session) GetGroup(ctx context.Context, id string) (GroupResponse, error) {
	var out GroupResponse
	err := s.getJSON(ctx, "/v1/groups/"+id, &out)
	return out, err
}

// ListGroups returns all groups.
func (s *Session) ListGroups(ctx context.Context) ([]GroupResponse, error) {
	var out []GroupResponse
	err := s.getJSON(ctx, "/v1/groups", &out)
	return out, err
}

// UpdateGroup renames the group and/or replaces its permission set. Unknown
// permission names are skipped server-side.
func (s *Session) UpdateGroup(ctx context.Context, id string, req GroupRequest) (GroupResponse, error) {
	var out GroupResponse
	resp, err := s.doJSON(ctx, http.MethodPatch, "/v1/groups/"+id, req)
	if err != nil {
		return GroupResponse{}, err
	}
	err = decodeJSON(resp, &out, http.StatusOK)
	return out, err
}

// DeleteGroup removes a group and its permission links.
func (s *Session) DeleteGroup(ctx context.Context, id string) error {
	return s.delete(ctx, "/v1/groups/"+id)
}

// ListPermissions returns the permission catalog.
func (s *Session) ListPermissions(ctx context.Context) ([]PermissionResponse, error) {
	var out []PermissionResponse
	err := s.getJSON(ctx, "/v1/permissions", &out)
	return out, err
}
