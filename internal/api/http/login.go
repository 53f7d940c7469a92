package http

import (
	"encoding/json"
	"net/http"

	"github.com/quollsec/scanhub/internal/api/service"
	"github.com/quollsec/scanhub/pkg/httpx"
	"github.com/quollsec/scanhub/pkg/scanapi"
	"github.com/quollsec/scanhub/pkg/slogx"
)

type LoginHandler struct {
	LoginService *service.LoginService
}

// ServeHTTP handles email/password login.
//
//	@Summary		Log in
//	@Description	Authenticates with email and password and returns an access token. Unknown email, wrong password and unverified accounts all yield the same 401.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		scanapi.LoginRequest	true	"Credentials"
//	@Success		200		{object}	scanapi.TokenResponse
//	@Failure		401		{object}	scanapi.APIError	"Incorrect email or password"
//	@Failure		500		{object}	scanapi.APIError	"Internal server error"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req scanapi.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	result, err := h.LoginService.Login(ctx, service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
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
