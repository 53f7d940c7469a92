package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/quollsec/scanhub/internal/api/service"
	"github.com/quollsec/scanhub/internal/api/store"
	"github.com/quollsec/scanhub/pkg/scanapi"
)

// writeServiceError translates service-layer errors into the API error
// envelope. Anything unrecognized becomes a 500 and gets logged.
func writeServiceError(w http.ResponseWriter, log *slog.Logger, err error) {
	if fe, ok := service.AsFieldErrors(err); ok {
		(&scanapi.APIError{
			StatusCode: http.StatusBadRequest,
			Code:       "validation_error",
			Fields:     fe,
		}).WriteError(w)
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		(&scanapi.APIError{
			StatusCode: http.StatusUnauthorized,
			Detail:     "Incorrect email or password",
		}).WriteError(w)

	case errors.Is(err, service.ErrInvalidOTP):
		(&scanapi.APIError{
			StatusCode: http.StatusBadRequest,
			Detail:     "Invalid OTP or Expired OTP",
		}).WriteError(w)

	case errors.Is(err, service.ErrMFANotEnrolled):
		(&scanapi.APIError{
			StatusCode: http.StatusBadRequest,
			Detail:     "MFA is not enrolled",
		}).WriteError(w)

	case errors.Is(err, service.ErrMFACodeInvalid):
		(&scanapi.APIError{
			StatusCode: http.StatusBadRequest,
			Detail:     "Invalid MFA code",
		}).WriteError(w)

	case errors.Is(err, service.ErrTargetNotInProject):
		(&scanapi.APIError{
			StatusCode: http.StatusBadRequest,
			Detail:     "Target is not part of the project",
		}).WriteError(w)

	case errors.Is(err, store.ErrNotFound):
		(&scanapi.APIError{
			StatusCode: http.StatusNotFound,
			Detail:     "Not found",
		}).WriteError(w)

	default:
		log.Error("request failed", "error", err)
		(&scanapi.APIError{
			StatusCode: http.StatusInternalServerError,
			Code:       "server_error",
			Detail:     "Internal server error",
		}).WriteError(w)
	}
}

// writeBadJSON reports an undecodable request body.
func writeBadJSON(w http.ResponseWriter) {
	(&scanapi.APIError{
		StatusCode: http.StatusBadRequest,
		Code:       "invalid_request",
		Detail:     "Request body is not valid JSON",
	}).WriteError(w)
}
