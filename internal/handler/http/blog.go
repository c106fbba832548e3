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

func (h *Handler) listBlogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	blogs, err := h.services.BlogService.ListBlogs(ctx)
	if err != nil {
		log.Err(err).Msg("listing blogs failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, blogs, http.StatusOK)
}

func (h *Handler) createBlog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user id in context")
		writeError(w, errTokenMissingOrInvalid, http.StatusUnauthorized)
		return
	}

	var req models.NewBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.BlogService.CreateBlog(ctx, callerID, req)
	if err != nil {
		log.Err(err).Int64("user_id", callerID).Msg("blog creation failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateBlog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	blogID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("malformatted blog id")
		writeError(w, "malformatted id", http.StatusBadRequest)
		return
	}

	var patch models.BlogPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.BlogService.UpdateBlog(ctx, blogID, patch)
	if err != nil {
		log.Err(err).Int64("blog_id", blogID).Msg("blog update failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteBlog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user id in context")
		writeError(w, errTokenMissingOrInvalid, http.StatusUnauthorized)
		return
	}

	blogID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("malformatted blog id")
		writeError(w, "malformatted id", http.StatusBadRequest)
		return
	}

	if err := h.services.BlogService.DeleteBlog(ctx, blogID, callerID); err != nil {
		log.Err(err).Int64("blog_id", blogID).Int64("caller_id", callerID).Msg("blog deletion failed")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
