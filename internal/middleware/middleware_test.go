package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/app/models/dto"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
	"github.com/yigit/unirecords/internal/pkg/auth"
	"github.com/yigit/unirecords/internal/pkg/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newJWT() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", AccessTokenExp: 2 * time.Hour, TokenIssuer: "unirecords"})
}

func token(t *testing.T, jwtSvc *auth.JWTService, userType, subject string) string {
	t.Helper()
	tok, _, err := jwtSvc.GenerateToken(1, userType, subject)
	require.NoError(t, err)
	return tok
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	return body
}

func newProtectedRouter(jwtSvc *auth.JWTService) *gin.Engine {
	am := NewAuthMiddleware(jwtSvc)
	r := gin.New()
	api := r.Group("/api", am.JWTAuth())
	api.GET("/students/:id/grades", am.SelfOrAdmin("id"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": c.GetString(ContextKeySubject)})
	})
	api.POST("/admin/program", am.RoleRequired(models.UserTypeAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestJWTAuth(t *testing.T) {
	jwtSvc := newJWT()
	r := newProtectedRouter(jwtSvc)

	expired := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", AccessTokenExp: time.Hour, TokenIssuer: "unirecords"}).
		WithClock(func() time.Time { return time.Now().Add(-3 * time.Hour) })
	expiredToken := token(t, expired, "student", "S1")

	tests := []struct {
		name   string
		header string
		status int
		code   dto.ErrorCode
	}{
		{"missing header", "", http.StatusUnauthorized, dto.ErrorCodeUnauthorized},
		{"malformed", "Basic abc", http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"bad signature", "Bearer " + token(t, auth.NewJWTService(auth.JWTConfig{SecretKey: "other", AccessTokenExp: time.Hour, TokenIssuer: "unirecords"}), "student", "S1"), http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"expired", "Bearer " + expiredToken, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"valid", "Bearer " + token(t, jwtSvc, "student", "S1"), http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/students/S1/grades", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.code != "" {
				assert.Equal(t, tt.code, decodeError(t, rec).Error.Code)
			}
		})
	}
}

func TestSelfOrAdmin(t *testing.T) {
	jwtSvc := newJWT()
	r := newProtectedRouter(jwtSvc)

	tests := []struct {
		name     string
		userType string
		subject  string
		path     string
		status   int
	}{
		{"own record", "student", "S1", "/api/students/S1/grades", http.StatusOK},
		{"other student", "student", "S1", "/api/students/S2/grades", http.StatusForbidden},
		{"admin", "admin", "root", "/api/students/S2/grades", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("Authorization", "Bearer "+token(t, jwtSvc, tt.userType, tt.subject))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestRoleRequired(t *testing.T) {
	jwtSvc := newJWT()
	r := newProtectedRouter(jwtSvc)

	for userType, status := range map[string]int{"admin": http.StatusNoContent, "student": http.StatusForbidden} {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/program", nil)
		req.Header.Set("Authorization", "Bearer "+token(t, jwtSvc, userType, "x"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, status, rec.Code, userType)
	}
}

func TestHandleAPIError(t *testing.T) {
	capacity := apperrors.NewCustomError(apperrors.ErrRegistrationLimit,
		"You can only register for up to 4 units in S1. You already have 4 units.").
		WithKind(apperrors.ErrValidationFailed)

	tests := []struct {
		name    string
		err     error
		status  int
		code    dto.ErrorCode
		message string
	}{
		{"capacity", capacity, http.StatusBadRequest, dto.ErrorCodeRegistrationRule, capacity.Message},
		{"validation", apperrors.NewValidationError("title is required"), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "title is required"},
		{"invalid user type", apperrors.NewCustomError(apperrors.ErrInvalidUserType, "Invalid user type").WithKind(apperrors.ErrValidationFailed), http.StatusBadRequest, dto.ErrorCodeInvalidUserType, "Invalid user type"},
		{"student not found", fmt.Errorf("lookup: %w", apperrors.ErrStudentNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Student not found"},
		{"program not found", apperrors.ErrProgramNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Program not found"},
		{"credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"},
		{"forbidden", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"},
		{"store", errors.New("pq: connection refused"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			body := decodeError(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.Equal(t, tt.message, body.Error.Message)
		})
	}
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zerolog.Nop()), Metrics(metrics.New()))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextKeyRequestID))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	id := rec.Header().Get(HeaderRequestID)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, rec.Body.String())

	const given = "5f0c1a39-7f3e-4a6c-9a0e-2d7c9b4f1e11"
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, given)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, given, rec.Header().Get(HeaderRequestID))
}

func TestBindJSON(t *testing.T) {
	r := gin.New()
	r.POST("/program", func(c *gin.Context) {
		var req dto.CreateProgramRequest
		if !BindJSON(c, &req) {
			return
		}
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/program", jsonBody(`{"description":"x"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "title is required", body.Error.Message)
	assert.Equal(t, "title", body.Error.Field)
}
