package http

import (
	"encoding/json"
	"net/http"

	"github.com/quollsec/scanhub/internal/api/service"
	"github.com/quollsec/scanhub/pkg/httpx"
	"github.com/quollsec/scanhub/pkg/scanapi"
	"github.com/quollsec/scanhub/pkg/slogx"
)

type MFAHandler struct {
	MFAService *service.MFAService
}

// HandleEnroll provisions a TOTP secret for the authenticated user.
//
//	@Summary		Enroll TOTP MFA
//	@Description	Generates a TOTP secret and provisioning URI. The secret is only returned once; re-enrolling replaces it.
//	@Tags			MFA
//	@Produce		json
//	@Success		200	{object}	scanapi.MFAEnrollResponse
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/users/me/mfa/enroll [post].
func (h *MFAHandler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	enrollment, err := h.MFAService.Enroll(ctx, httpx.UserIDFromContext(ctx))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, scanapi.MFAEnrollResponse{
		Secret:          enrollment.Secret,
		ProvisioningURI: enrollment.ProvURI,
	})
}

// HandleConfirm validates the first TOTP code after enrollment.
//
//	@Summary		Confirm TOTP MFA
//	@Description	Validates a code from the authenticator app and marks the enrollment as confirmed.
//	@Tags			MFA
//	@Accept			json
//	@Success		204	"MFA confirmed"
//	@Failure		400	{object}	scanapi.APIError	"Invalid code or not enrolled"
//	@Failure		401	{object}	scanapi.APIError	"Unauthorized"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/users/me/mfa/confirm [post].
func (h *MFAHandler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req scanapi.MFAConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	if err := h.MFAService.Confirm(ctx, httpx.UserIDFromContext(ctx), req.Code); err != nil {
		writeServiceError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
