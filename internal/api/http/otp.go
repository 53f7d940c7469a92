package http

import (
	"encoding/json"
	"net/http"

	"github.com/quollsec/scanhub/internal/api/service"
	"github.com/quollsec/scanhub/pkg/httpx"
	"github.com/quollsec/scanhub/pkg/scanapi"
	"github.com/quollsec/scanhub/pkg/slogx"
)

type VerifyOTPHandler struct {
	OTPService *service.OTPService
}

// ServeHTTP handles activation code verification.
//
//	@Summary		Verify activation code
//	@Description	Consumes the emailed one-time code and activates the account. Codes are single-use; a second attempt with the same code fails.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		scanapi.VerifyOTPRequest	true	"Email and code"
//	@Success		200		{object}	scanapi.TokenResponse
//	@Failure		400		{object}	scanapi.APIError	"Invalid OTP or Expired OTP"
//	@Failure		500		{object}	scanapi.APIError	"Internal server error"
//	@Router			/v1/auth/verify-otp [post].
func (h *VerifyOTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req scanapi.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	result, err := h.OTPService.VerifyOTP(ctx, service.VerifyOTPInput{
		Email: req.Email,
		OTP:   req.OTP,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, scanapi.TokenResponse{
		AccessToken: result.Token,
		TokenType:   "Bearer",
		User:        toUserResponse(result.User),
	})
}
