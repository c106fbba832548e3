package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bloglist/bloglist/internal/logger"
	"github.com/bloglist/bloglist/internal/utils"
	"github.com/bloglist/bloglist/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, creds)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user registration failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.BlogService.ListUsersWithBlogs(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("malformatted user id")
		writeError(w, "malformatted id", http.StatusBadRequest)
		return
	}

	user, err := h.services.BlogService.GetUserWithBlogs(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user lookup failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
