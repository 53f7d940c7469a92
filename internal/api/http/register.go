package http

import (
	"encoding/json"
	"net/http"

	"github.com/quollsec/scanhub/internal/api/service"
	"github.com/quollsec/scanhub/pkg/httpx"
	"github.com/quollsec/scanhub/pkg/scanapi"
	"github.com/quollsec/scanhub/pkg/slogx"
)

type RegisterHandler struct {
	RegisterService *service.RegisterService
}

// ServeHTTP handles user registration.
//
//	@Summary		Register a new account
//	@Description	Creates an inactive user and provisions their tenant. An activation code is issued and must be consumed via /v1/auth/verify-otp before login. tenant_data is an empty object when tenant provisioning was skipped or failed.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		scanapi.RegisterRequest	true	"Registration payload"
//	@Success		201		{object}	scanapi.RegisterResponse
//	@Failure		400		{object}	scanapi.APIError	"Validation failed"
//	@Failure		500		{object}	scanapi.APIError	"Internal server error"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req scanapi.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	user, tenantStatus, err := h.RegisterService.Register(ctx, service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, scanapi.RegisterResponse{
		User:       toUserResponse(user),
		TenantData: toTenantData(tenantStatus),
	})
}
