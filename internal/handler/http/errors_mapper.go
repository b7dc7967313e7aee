package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-keyplace/internal/app"
	"github.com/MKhiriev/go-keyplace/internal/crypto"
	"github.com/MKhiriev/go-keyplace/internal/logger"
	"github.com/MKhiriev/go-keyplace/internal/service"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order. ErrEmptyKeyList comes before
// ErrInvalidDataProvided so the client can tell the two apart.
var errorResponses = []errorResponse{
	{service.ErrEmptyKeyList, http.StatusBadRequest, app.MsgEmptyKeyList},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrAccountAlreadyExists, http.StatusConflict, app.MsgAccountAlreadyExists},
	{service.ErrSessionInvalid, http.StatusUnauthorized, app.MsgSessionInvalid},
	{service.ErrNotFound, http.StatusUnauthorized, app.MsgAuthenticationFailed},
	{crypto.ErrSignature, http.StatusForbidden, app.MsgSignatureInvalid},
	{service.ErrRateLimited, http.StatusTooManyRequests, app.MsgTooManyRequests},
}

func responseFromError(err error) (int, string) {
	for _, r := range errorResponses {
		if errors.Is(err, r.target) {
			return r.status, r.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func statusFromError(err error) int {
	status, _ := responseFromError(err)
	return status
}

// writeError answers with the status and fixed message of err. Internal
// details only reach the log.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := responseFromError(err)

	log := logger.FromRequest(r)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	http.Error(w, msg, status)
}
