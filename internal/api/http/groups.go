package http

import (
	"encoding/json"
	"net/http"

	"github.com/quollsec/scanhub/internal/api/service"
	"github.com/quollsec/scanhub/pkg/httpx"
	"github.com/quollsec/scanhub/pkg/scanapi"
	"github.com/quollsec/scanhub/pkg/slogx"
)

type GroupsHandler struct {
	GroupService *service.GroupService
}

// HandleCreate stores a new group.
//
//	@Summary		Create group
//	@Description	Creates a group with an optional initial permission set. Unknown permission names are skipped.
//	@Tags			Groups
//	@Accept			json
//	@Produce		json
//	@Param			request	body		scanapi.GroupRequest	true	"Group payload"
//	@Success		201		{object}	scanapi.GroupResponse
//	@Failure		400		{object}	scanapi.APIError	"Validation failed"
//	@Failure		401		{object}	scanapi.APIError	"Unauthorized"
//	@Failure		500		{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/groups [post].
func (h *GroupsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req scanapi.GroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	name := ""
	if req.Name != nil {
		name = *req.Name
	}

	group, err := h.GroupService.Create(ctx, name, req.Permissions)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toGroupResponse(group))
}

// HandleList returns all groups with their permission names.
//
//	@Summary		List groups
//	@Tags			Groups
//	@Produce		json
//	@Success		200	{array}		scanapi.GroupResponse
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/groups [get].
func (h *GroupsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	groups, err := h.GroupService.List(ctx)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	out := make([]scanapi.GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, toGroupResponse(g))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet returns one group with its permission names.
//
//	@Summary		Get group
//	@Tags			Groups
//	@Produce		json
//	@Param			id	path		string	true	"Group ID"
//	@Success		200	{object}	scanapi.GroupResponse
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		404	{object}	scanapi.APIError	"Not found"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/groups/{id} [get].
func (h *GroupsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	group, err := h.GroupService.Get(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toGroupResponse(group))
}

// HandleUpdate renames a group and/or replaces its permission set.
//
//	@Summary		Update group
//	@Description	Omitting name keeps the current name; omitting permissions keeps the current set. Passing an empty permissions list clears it. Unknown permission names are skipped.
//	@Tags			Groups
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Group ID"
//	@Param			request	body		scanapi.GroupRequest	true	"Fields to change"
//	@Success		200		{object}	scanapi.GroupResponse
//	@Failure		400		{object}	scanapi.APIError	"Validation failed"
//	@Failure		401		{object}	scanapi.APIError	"Unauthorized"
//	@Failure		404		{object}	scanapi.APIError	"Not found"
//	@Failure		500		{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/groups/{id} [patch].
func (h *GroupsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req scanapi.GroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	group, err := h.GroupService.Update(ctx, r.PathValue("id"), service.UpdateGroupInput{
		Name:        req.Name,
		Permissions: req.Permissions,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toGroupResponse(group))
}

// HandleDelete removes a group.
//
//	@Summary		Delete group
//	@Tags			Groups
//	@Param			id	path	string	true	"Group ID"
//	@Success		204	"Deleted"
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		404	{object}	scanapi.APIError	"Not found"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/groups/{id} [delete].
func (h *GroupsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.GroupService.Delete(ctx, r.PathValue("id")); err != nil {
		writeServiceError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type PermissionsHandler struct {
	GroupService *service.GroupService
}

// ServeHTTP returns the permission catalog.
//
//	@Summary		List permissions
//	@Tags			Groups
//	@Produce		json
//	@Success		200	{array}		scanapi.PermissionResponse
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/permissions [get].
func (h *PermissionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	perms, err := h.GroupService.ListPermissions(ctx)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	out := make([]scanapi.PermissionResponse, 0, len(perms))
	for _, p := range perms {
		out = append(out, toPermissionResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
