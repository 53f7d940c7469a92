package http

import (
	"net/http"

	"github.com/quollsec/scanhub/internal/api/service"
	"github.com/quollsec/scanhub/pkg/httpx"
	"github.com/quollsec/scanhub/pkg/slogx"
)

type TenantsHandler struct {
	TenantService *service.TenantService
}

// HandleMe returns the tenant owned by the authenticated user.
//
//	@Summary		Get own tenant
//	@Tags			Tenants
//	@Produce		json
//	@Success		200	{object}	scanapi.TenantResponse
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		404	{object}	scanapi.APIError	"No tenant provisioned"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/tenants/me [get].
func (h *TenantsHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	tenant, err := h.TenantService.GetTenantForUser(ctx, httpx.UserIDFromContext(ctx))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTenantResponse(tenant))
}
