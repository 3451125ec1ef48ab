package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-zk-vault/internal/app"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/service"
	"github.com/MKhiriev/go-zk-vault/internal/store"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []errorResponse{
	{service.ErrVersionIsNotSpecified, http.StatusBadRequest, app.MsgVersionIsNotSpecified},
	{service.ErrUnsupportedKeyVersion, http.StatusBadRequest, app.MsgUnsupportedKeyVersion},
	{service.ErrNotCiphertext, http.StatusBadRequest, app.MsgNotCiphertext},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},
	{store.ErrNoUserWasFound, http.StatusNotFound, app.MsgAccountNotFound},
}

func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and answers with its mapped status. Internal errors
// are logged at error level, client mistakes at info.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, action string) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg(action)
	} else {
		log.Info().Err(err).Int("status", status).Msg(action)
	}

	http.Error(w, message, status)
}
