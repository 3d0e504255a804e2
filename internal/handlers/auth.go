package handlers

import (
	"errors"
	"net/http"

	"loginapp/internal/models"
	"loginapp/internal/service"
	"loginapp/internal/token"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// bindJSON tries to bind the request body into dst and writes an error
// envelope on failure. Returns false if the request was already handled.
func (h *Handler) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		respondErr(c, http.StatusBadRequest, msgGenericError)
		return false
	}
	return true
}

func (h *Handler) register(c *gin.Context) {
	var input registerRequest
	if ok := h.bindJSON(c, &input); !ok {
		return
	}

	id, err := h.services.Register(c.Request.Context(), input.Name, input.Username, input.Password)
	if err != nil {
		h.registerError(c, input.Username, err)
		return
	}

	if h.log != nil {
		h.log.Infow("user_registered", "username", input.Username, "user_id", id)
	}
	respondOK(c, http.StatusOK, nil)
}

func (h *Handler) registerError(c *gin.Context, username string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidUsername):
		respondErr(c, http.StatusBadRequest, msgInvalidUsername)
	case errors.Is(err, service.ErrInvalidPassword):
		respondErr(c, http.StatusBadRequest, msgInvalidPassword)
	case errors.Is(err, service.ErrPasswordTooShort):
		respondErr(c, http.StatusBadRequest, msgPasswordTooShort)
	case errors.Is(err, models.ErrUsernameTaken):
		respondErr(c, http.StatusConflict, msgUsernameTaken)
	default:
		if h.log != nil {
			h.log.Errorw("register_failed", "username", username, "err", err)
		}
		respondErr(c, http.StatusInternalServerError, msgGenericError)
	}
}

func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSON(c, &input); !ok {
		return
	}

	signed, err := h.services.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondErr(c, http.StatusUnauthorized, msgBadCredentials)
			return
		}
		if h.log != nil {
			h.log.Errorw("login_failed", "username", input.Username, "err", err)
		}
		respondErr(c, http.StatusInternalServerError, msgGenericError)
		return
	}

	respondOK(c, http.StatusOK, signed)
}

func (h *Handler) changePassword(c *gin.Context) {
	var input changePasswordRequest
	if ok := h.bindJSON(c, &input); !ok {
		return
	}

	err := h.services.ChangePassword(c.Request.Context(), input.Token, input.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPassword):
			respondErr(c, http.StatusBadRequest, msgInvalidPassword)
		case errors.Is(err, service.ErrPasswordTooShort):
			respondErr(c, http.StatusBadRequest, msgPasswordTooShort)
		case errors.Is(err, token.ErrInvalidToken):
			respondErr(c, http.StatusUnauthorized, msgSecurityAlert)
		default:
			if h.log != nil {
				h.log.Errorw("change_password_failed", "err", err)
			}
			respondErr(c, http.StatusInternalServerError, msgSecurityAlert)
		}
		return
	}

	respondOK(c, http.StatusOK, nil)
}
