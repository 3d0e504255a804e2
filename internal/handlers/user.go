package handlers

import (
	"errors"
	"net/http"

	"loginapp/internal/service"

	"github.com/gin-gonic/gin"
)

// me returns the record behind the presented bearer token.
func (h *Handler) me(c *gin.Context) {
	id := c.GetString(ctxUserID)

	u, err := h.services.CurrentUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondErr(c, http.StatusNotFound, msgGenericError)
			return
		}
		if h.log != nil {
			h.log.Errorw("current_user_failed", "user_id", id, "err", err)
		}
		respondErr(c, http.StatusInternalServerError, msgGenericError)
		return
	}

	respondOK(c, http.StatusOK, u)
}
