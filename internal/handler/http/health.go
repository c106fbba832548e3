package http

import (
	"net/http"

	"github.com/bloglist/bloglist/internal/logger"
	"github.com/bloglist/bloglist/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.pinger.PingContext(r.Context()); err != nil {
		log.Err(err).Msg("database ping failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
