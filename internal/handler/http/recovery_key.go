// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-zk-vault/internal/app"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/utils"
	"github.com/MKhiriev/go-zk-vault/models"
)

// getRecoveryKey always answers 200. An account without a recovery key
// gets {"recoveryBlob": null}.
func (h *Handler) getRecoveryKey(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	key, err := h.services.KeyService.GetRecoveryKey(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err, "recovery key lookup failed")
		return
	}

	utils.WriteJSON(w, key, http.StatusOK)
}

func (h *Handler) saveRecoveryKey(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var key models.RecoveryKey
	if err := utils.DecodeJSON(w, r, &key); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.KeyService.SaveRecoveryKey(r.Context(), userID, key); err != nil {
		h.writeError(w, r, err, "recovery key upload failed")
		return
	}

	log.Info().Int64("user_id", userID).Msg("recovery key stored")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteRecoveryKey(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	if err := h.services.KeyService.DeleteRecoveryKey(r.Context(), userID); err != nil {
		h.writeError(w, r, err, "recovery key removal failed")
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", userID).Msg("recovery key deleted")
	w.WriteHeader(http.StatusNoContent)
}
