package handlers

import (
	"context"
	"net/http"

	"loginapp/internal/models"
	"loginapp/internal/service"
	"loginapp/internal/token"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerID  string
	registerErr error
	loginToken  string
	loginErr    error
	changeErr   error
	parseClaims *token.Claims
	parseErr    error
	user        *models.User
	userErr     error

	lastRegisterUsername string
	lastLoginUsername    string
	lastChangeToken      string
	lastChangePassword   string
	lastParseToken       string
}

func (m *mockAuth) Register(ctx context.Context, name, username, plaintext string) (string, error) {
	m.lastRegisterUsername = username
	return m.registerID, m.registerErr
}

func (m *mockAuth) Login(ctx context.Context, username, plaintext string) (string, error) {
	m.lastLoginUsername = username
	return m.loginToken, m.loginErr
}

func (m *mockAuth) ChangePassword(ctx context.Context, rawToken, newPlaintext string) error {
	m.lastChangeToken = rawToken
	m.lastChangePassword = newPlaintext
	return m.changeErr
}

func (m *mockAuth) ParseToken(raw string) (*token.Claims, error) {
	m.lastParseToken = raw
	return m.parseClaims, m.parseErr
}

func (m *mockAuth) CurrentUser(ctx context.Context, id string) (*models.User, error) {
	return m.user, m.userErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(tok string) http.Header {
	h := http.Header{}
	if tok != "" {
		h.Set("Authorization", "Bearer "+tok)
	}
	return h
}
