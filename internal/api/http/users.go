package http

import (
	"encoding/json"
	"net/http"

	"github.com/quollsec/scanhub/internal/api/service"
	"github.com/quollsec/scanhub/pkg/httpx"
	"github.com/quollsec/scanhub/pkg/scanapi"
	"github.com/quollsec/scanhub/pkg/slogx"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleMe returns the authenticated user's profile.
//
//	@Summary		Get own profile
//	@Description	Returns the authenticated user and their tenant, when one has been provisioned.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	scanapi.MeResponse
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/users/me [get].
func (h *UsersHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	profile, err := h.UserService.GetProfile(ctx, httpx.UserIDFromContext(ctx))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMeResponse(profile))
}

// HandleUpdateMe updates the authenticated user's email and full name.
//
//	@Summary		Update own profile
//	@Description	Changes email and full name. The email must be unused by any account and the full name must contain both first and last name.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		scanapi.UpdateProfileRequest	true	"Profile fields"
//	@Success		200		{object}	scanapi.MeResponse
//	@Failure		400		{object}	scanapi.APIError	"Validation failed"
//	@Failure		401		{object}	scanapi.APIError	"Unauthorized"
//	@Failure		500		{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/users/me [put].
func (h *UsersHandler) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req scanapi.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	profile, err := h.UserService.UpdateProfile(ctx, httpx.UserIDFromContext(ctx), service.UpdateProfileInput{
		Email:    req.Email,
		FullName: req.FullName,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMeResponse(profile))
}
