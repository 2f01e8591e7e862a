package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/unirecords/internal/config"
	"github.com/yigit/unirecords/internal/db"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Dependencies) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.CORSOrigins = "*"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTokenExpiration = "1h"
	cfg.JWT.Issuer = "unirecords"

	// Requests below are rejected before any repository is reached
	deps := BuildDependencies(cfg, &db.PostgresDB{}, zerolog.Nop())
	return SetupRouter(cfg, deps, zerolog.Nop()), deps
}

func bearer(t *testing.T, deps *Dependencies, userType, subject string) string {
	t.Helper()
	token, _, err := deps.JWTService.GenerateToken(1, userType, subject)
	require.NoError(t, err)
	return "Bearer " + token
}

func serve(r http.Handler, method, path, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRouter_PublicEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := serve(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = serve(r, http.MethodGet, "/swagger/doc.json", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/students/{id}/full-audit")

	rec = serve(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "unirecords_http_requests_total")
}

func TestRouter_AccessControl(t *testing.T) {
	r, deps := newTestRouter(t)
	s2 := bearer(t, deps, "student", "S2")

	tests := []struct {
		name   string
		method string
		path   string
		authz  string
		status int
	}{
		{"no token", http.MethodGet, "/api/students/S1/invoice", "", http.StatusUnauthorized},
		{"garbage token", http.MethodGet, "/api/students/S1/grades", "Bearer nope", http.StatusUnauthorized},
		{"other student", http.MethodGet, "/api/students/S1/full-audit", s2, http.StatusForbidden},
		{"student on admin route", http.MethodPost, "/api/admin/program", s2, http.StatusForbidden},
		{"admin without token", http.MethodPut, "/api/admin/invoice/S1", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(r, tt.method, tt.path, tt.authz)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.True(t, strings.Contains(rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost))
}

func TestCorsConfig_ExplicitOrigins(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.CORSOrigins = "http://a.example, http://b.example"

	c := corsConfig(cfg)

	assert.False(t, c.AllowAllOrigins)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, c.AllowOrigins)
	assert.True(t, c.AllowCredentials)
	assert.NoError(t, c.Validate())
}
