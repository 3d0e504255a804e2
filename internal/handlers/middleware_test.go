package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"loginapp/internal/models"
	"loginapp/internal/service"
	"loginapp/internal/token"
)

func TestAuthMiddleware_Errors(t *testing.T) {
	cases := []struct {
		name     string
		header   string
		parseErr error
		wantMsg  string
	}{
		{
			name:    "missing header",
			header:  "",
			wantMsg: "missing Authorization header",
		},
		{
			name:    "invalid scheme",
			header:  "Token abc",
			wantMsg: "invalid Authorization header format",
		},
		{
			name:    "bearer without token",
			header:  "Bearer",
			wantMsg: "invalid Authorization header format",
		},
		{
			name:     "expired or forged token",
			header:   "Bearer bad",
			parseErr: token.ErrInvalidToken,
			wantMsg:  "invalid or expired token",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{parseErr: tc.parseErr, parseClaims: &token.Claims{UserID: "id-1"}}
			r := newTestRouter(&service.Service{Authorization: auth})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status: got %d, want 401 (body=%s)", w.Code, w.Body.String())
			}
			var out response
			if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
				t.Fatalf("invalid JSON response: %v", err)
			}
			if out.Status != "error" || out.Error != tc.wantMsg {
				t.Fatalf("expected error %q, got body %s", tc.wantMsg, w.Body.String())
			}
		})
	}
}

func TestMeHandler(t *testing.T) {
	t.Run("returns current user", func(t *testing.T) {
		auth := &mockAuth{
			parseClaims: &token.Claims{UserID: "id-7", Username: "alice1"},
			user:        &models.User{ID: "id-7", Name: "Alice", Username: "alice1", PasswordHash: "h123"},
		}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		req.Header = authHeader("tok123")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		if auth.lastParseToken != "tok123" {
			t.Fatalf("middleware parsed token %q", auth.lastParseToken)
		}

		var out map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &out)
		data, ok := out["data"].(map[string]any)
		if !ok {
			t.Fatalf("expected user payload, got %s", w.Body.String())
		}
		if data["username"] != "alice1" {
			t.Fatalf("unexpected username: %v", data["username"])
		}
		// the hash must never cross the wire
		if _, leaked := data["password_hash"]; leaked {
			t.Fatalf("password hash leaked in response: %s", w.Body.String())
		}
	})

	t.Run("record gone behind a valid token", func(t *testing.T) {
		auth := &mockAuth{
			parseClaims: &token.Claims{UserID: "gone"},
			userErr:     service.ErrUserNotFound,
		}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		req.Header = authHeader("tok123")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("lookup failure", func(t *testing.T) {
		auth := &mockAuth{
			parseClaims: &token.Claims{UserID: "id-7"},
			userErr:     errors.New("db down"),
		}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		req.Header = authHeader("tok123")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
	})
}
