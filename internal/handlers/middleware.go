package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID   = "userId"
	ctxUsername = "username"
)

func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response{
			Status: "error", Error: "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response{
			Status: "error", Error: "invalid Authorization header format",
		})
		return
	}

	claims, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response{
			Status: "error", Error: "invalid or expired token",
		})
		return
	}

	c.Set(ctxUserID, claims.UserID)
	c.Set(ctxUsername, claims.Username)
	c.Next()
}
