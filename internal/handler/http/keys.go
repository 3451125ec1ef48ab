package http

import (
	"net/http"

	"github.com/MKhiriev/go-zk-vault/internal/app"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/utils"
	"github.com/MKhiriev/go-zk-vault/models"
)

func (h *Handler) getKeyParams(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	params, err := h.services.KeyService.GetKeyParams(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err, "key params lookup failed")
		return
	}

	utils.WriteJSON(w, params, http.StatusOK)
}

func (h *Handler) getWrappedMasterKey(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	wrapped, err := h.services.KeyService.GetWrappedMasterKey(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err, "wrapped master key lookup failed")
		return
	}

	utils.WriteJSON(w, wrapped, http.StatusOK)
}

func (h *Handler) rotateMasterKey(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var rotation models.MasterKeyRotation
	if err := utils.DecodeJSON(w, r, &rotation); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.KeyService.RotateMasterKey(r.Context(), userID, rotation); err != nil {
		h.writeError(w, r, err, "master key rotation failed")
		return
	}

	log.Info().Int64("user_id", userID).Msg("master key re-wrapped")
	w.WriteHeader(http.StatusNoContent)
}

// userID reads the id the auth middleware put into the context.
func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}
