package http

import (
	"encoding/json"
	"net/http"

	"github.com/quollsec/scanhub/internal/api/service"
	"github.com/quollsec/scanhub/pkg/httpx"
	"github.com/quollsec/scanhub/pkg/scanapi"
	"github.com/quollsec/scanhub/pkg/slogx"
)

type TenantUsersHandler struct {
	TenantService     *service.TenantService
	TenantUserService *service.TenantUserService
}

// tenantID resolves the caller's tenant.
func (h *TenantUsersHandler) tenantID(r *http.Request) (string, error) {
	tenant, err := h.TenantService.GetTenantForUser(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		return "", err
	}
	return tenant.ID, nil
}

// HandleCreate adds a member to the caller's tenant.
//
//	@Summary		Create tenant user
//	@Description	Adds a member to the caller's tenant. is_active must be a JSON boolean; truthy strings are rejected.
//	@Tags			TenantUsers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		scanapi.TenantUserRequest	true	"Tenant user payload"
//	@Success		201		{object}	scanapi.TenantUserResponse
//	@Failure		400		{object}	scanapi.APIError	"Validation failed"
//	@Failure		401		{object}	scanapi.APIError	"Unauthorized"
//	@Failure		500		{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/tenant-users [post].
func (h *TenantUsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	tenantID, err := h.tenantID(r)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	var req scanapi.TenantUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	tu, err := h.TenantUserService.Create(ctx, tenantID, service.TenantUserInput{
		Name:             req.Name,
		OrganizationName: req.OrganizationName,
		IsActive:         req.IsActive,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toTenantUserResponse(tu))
}

// HandleList returns the members of the caller's tenant.
//
//	@Summary		List tenant users
//	@Tags			TenantUsers
//	@Produce		json
//	@Success		200	{array}		scanapi.TenantUserResponse
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/tenant-users [get].
func (h *TenantUsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	tenantID, err := h.tenantID(r)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	tus, err := h.TenantUserService.List(ctx, tenantID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	out := make([]scanapi.TenantUserResponse, 0, len(tus))
	for _, tu := range tus {
		out = append(out, toTenantUserResponse(tu))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet returns one tenant user.
//
//	@Summary		Get tenant user
//	@Tags			TenantUsers
//	@Produce		json
//	@Param			id	path		string	true	"Tenant user ID"
//	@Success		200	{object}	scanapi.TenantUserResponse
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		404	{object}	scanapi.APIError	"Not found"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/tenant-users/{id} [get].
func (h *TenantUsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	tu, err := h.TenantUserService.Get(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTenantUserResponse(tu))
}

// HandleUpdate rewrites a tenant user.
//
//	@Summary		Update tenant user
//	@Tags			TenantUsers
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Tenant user ID"
//	@Param			request	body		scanapi.TenantUserRequest	true	"Tenant user payload"
//	@Success		200		{object}	scanapi.TenantUserResponse
//	@Failure		400		{object}	scanapi.APIError	"Validation failed"
//	@Failure		401		{object}	scanapi.APIError	"Unauthorized"
//	@Failure		404		{object}	scanapi.APIError	"Not found"
//	@Failure		500		{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/tenant-users/{id} [put].
func (h *TenantUsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req scanapi.TenantUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	tu, err := h.TenantUserService.Update(ctx, r.PathValue("id"), service.TenantUserInput{
		Name:             req.Name,
		OrganizationName: req.OrganizationName,
		IsActive:         req.IsActive,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTenantUserResponse(tu))
}

// HandleDelete removes a tenant user.
//
//	@Summary		Delete tenant user
//	@Tags			TenantUsers
//	@Param			id	path	string	true	"Tenant user ID"
//	@Success		204	"Deleted"
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		404	{object}	scanapi.APIError	"Not found"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/tenant-users/{id} [delete].
func (h *TenantUsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.TenantUserService.Delete(ctx, r.PathValue("id")); err != nil {
		writeServiceError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
