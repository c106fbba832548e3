package http

import (
	"encoding/json"
	"net/http"

	"github.com/bloglist/bloglist/internal/logger"
	"github.com/bloglist/bloglist/internal/utils"
	"github.com/bloglist/bloglist/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("login failed")
		respondError(w, err)
		return
	}

	log.Debug().Int64("id", foundUser.ID).Str("username", foundUser.Username).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		Token:    token.SignedString,
		Username: foundUser.Username,
		Name:     foundUser.Name,
	}, http.StatusOK)
}
