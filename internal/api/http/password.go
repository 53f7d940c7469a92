package http

import (
	"encoding/json"
	"net/http"

	"github.com/quollsec/scanhub/internal/api/service"
	"github.com/quollsec/scanhub/pkg/httpx"
	"github.com/quollsec/scanhub/pkg/scanapi"
	"github.com/quollsec/scanhub/pkg/slogx"
)

type ChangePasswordHandler struct {
	PasswordService *service.PasswordService
}

// ServeHTTP handles password changes for the authenticated user.
//
//	@Summary		Change password
//	@Description	Verifies the old password before storing the new one.
//	@Tags			Auth
//	@Accept			json
//	@Success		204	"Password changed"
//	@Failure		400	{object}	scanapi.APIError	"Validation failed or old password incorrect"
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/auth/change-password [post].
func (h *ChangePasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromContext(ctx)

	var req scanapi.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	err := h.PasswordService.ChangePassword(ctx, userID, service.ChangePasswordInput{
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
