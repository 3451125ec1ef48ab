package http

import (
	"net/http"

	"github.com/MKhiriev/go-zk-vault/internal/app"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/utils"
	"github.com/MKhiriev/go-zk-vault/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := utils.DecodeJSON(w, r, &user); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		h.writeError(w, r, err, "user registration failed")
		return
	}

	if !h.setToken(w, r, registeredUser) {
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Msg("user registered")
	utils.WriteJSON(w, models.User{Login: registeredUser.Login, Name: registeredUser.Name}, http.StatusOK)
}

// params answers for any login. Unknown logins get decoy parameters from
// the service.
func (h *Handler) params(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := utils.DecodeJSON(w, r, &user); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	params, err := h.services.AuthService.Params(r.Context(), user.Login)
	if err != nil {
		h.writeError(w, r, err, "key params lookup failed")
		return
	}

	utils.WriteJSON(w, params, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := utils.DecodeJSON(w, r, &user); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		h.writeError(w, r, err, "user login failed")
		return
	}

	if !h.setToken(w, r, foundUser) {
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, foundUser, http.StatusOK)
}

// setToken issues a token for user and puts it in the Authorization
// header. It writes the error response itself and reports false on failure.
func (h *Handler) setToken(w http.ResponseWriter, r *http.Request, user models.User) bool {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		h.writeError(w, r, err, "creation of token failed")
		return false
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	return true
}
