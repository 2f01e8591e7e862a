package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/app/models/dto"
	"github.com/yigit/unirecords/internal/app/services"
	"github.com/yigit/unirecords/internal/middleware"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
	"github.com/yigit/unirecords/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAuthService struct {
	resp *dto.TokenResponse
	err  error
	got  *dto.LoginRequest
}

func (s *stubAuthService) Login(_ context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	s.got = req
	return s.resp, s.err
}

type stubStudentService struct {
	invoice *dto.InvoiceResponse
	details *dto.StudentDetailsResponse
	units   []dto.AvailableUnitResponse
	err     error
	gotYear int
}

func (s *stubStudentService) GetInvoice(context.Context, string) (*dto.InvoiceResponse, error) {
	return s.invoice, s.err
}

func (s *stubStudentService) GetGrades(context.Context, string) ([]dto.GradeResponse, error) {
	return []dto.GradeResponse{{UnitName: "Programming 1", Grade: "A", Semester: "S1", Year: 2025}}, s.err
}

func (s *stubStudentService) GetHistory(context.Context, string) ([]dto.HistoryResponse, error) {
	return []dto.HistoryResponse{}, s.err
}

func (s *stubStudentService) GetDetails(context.Context, string) (*dto.StudentDetailsResponse, error) {
	return s.details, s.err
}

func (s *stubStudentService) GetAvailableUnits(_ context.Context, _ string, year int, _ string) ([]dto.AvailableUnitResponse, error) {
	s.gotYear = year
	return s.units, s.err
}

type stubAuditService struct {
	full *dto.FullAuditResponse
	err  error
}

func (s *stubAuditService) GetFullAudit(context.Context, string) (*dto.FullAuditResponse, error) {
	return s.full, s.err
}

func (s *stubAuditService) GetAudit(context.Context, string) ([]dto.AuditEntryResponse, error) {
	return []dto.AuditEntryResponse{{Title: "Programming 1", Grade: "A", Status: "Passed"}}, s.err
}

type stubRegistrationService struct {
	err       error
	studentID string
	units     []models.UnitRegistration
}

func (s *stubRegistrationService) RegisterUnits(_ context.Context, studentID string, units []models.UnitRegistration) (string, error) {
	s.studentID, s.units = studentID, units
	if s.err != nil {
		return "", s.err
	}
	return services.RegistrationSuccessMessage, nil
}

type stubAdminService struct {
	created bool
	err     error
	unitID  int64
}

func (s *stubAdminService) CreateStudent(context.Context, *dto.CreateStudentRequest) (*models.Student, error) {
	return &models.Student{}, s.err
}

func (s *stubAdminService) UpsertInvoice(context.Context, string, *dto.UpsertInvoiceRequest) (bool, error) {
	return s.created, s.err
}

func (s *stubAdminService) UpsertGrade(_ context.Context, _ string, unitID int64, _ *dto.UpsertGradeRequest) (bool, error) {
	s.unitID = unitID
	return s.created, s.err
}

func (s *stubAdminService) CreateProgram(context.Context, *dto.CreateProgramRequest) (*models.Program, error) {
	return &models.Program{}, s.err
}

func (s *stubAdminService) CreateUnit(context.Context, *dto.CreateUnitRequest) (*models.Unit, error) {
	return &models.Unit{}, s.err
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// withClaims stands in for JWTAuth
func withClaims(claims *auth.Claims) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims != nil {
			c.Set(middleware.ContextKeyClaims, claims)
		}
		c.Next()
	}
}

func studentClaims(id string) *auth.Claims {
	c := &auth.Claims{UserType: "student"}
	c.Subject = id
	return c
}

func adminClaims() *auth.Claims {
	c := &auth.Claims{UserType: "admin"}
	c.Subject = "root"
	return c
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) *dto.ErrorDetail {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	return body.Error
}

func TestAuthController_Login(t *testing.T) {
	svc := &stubAuthService{resp: &dto.TokenResponse{Token: "a.b.c"}}
	r := gin.New()
	r.POST("/login", NewAuthController(svc, zerolog.Nop()).Login)

	rec := doJSON(r, http.MethodPost, "/login", `{"userType":"student","studentId":"S1","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"a.b.c"}`, rec.Body.String())
	assert.Equal(t, "S1", svc.got.StudentID)

	svc.err = apperrors.ErrInvalidCredentials
	rec = doJSON(r, http.MethodPost, "/login", `{"userType":"student","studentId":"S1","password":"bad"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", errorBody(t, rec).Message)

	rec = doJSON(r, http.MethodPost, "/login", `{"userType":"student"`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func newStudentRouter(claims *auth.Claims, ss *stubStudentService, as *stubAuditService, rs *stubRegistrationService) *gin.Engine {
	ctrl := NewStudentController(ss, as, rs, zerolog.Nop())
	r := gin.New()
	g := r.Group("/students", withClaims(claims))
	g.POST("/register-units", ctrl.RegisterUnits)
	g.GET("/available-units", ctrl.GetAvailableUnits)
	g.GET("/:id/invoice", ctrl.GetInvoice)
	g.GET("/:id/grades", ctrl.GetGrades)
	g.GET("/:id/audit", ctrl.GetAudit)
	g.GET("/:id/full-audit", ctrl.GetFullAudit)
	g.GET("/:id/history", ctrl.GetHistory)
	g.GET("/:id/details", ctrl.GetDetails)
	return r
}

func TestStudentController_InvoiceNull(t *testing.T) {
	r := newStudentRouter(studentClaims("S1"), &stubStudentService{}, &stubAuditService{}, &stubRegistrationService{})

	rec := doJSON(r, http.MethodGet, "/students/S1/invoice", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", rec.Body.String())
}

func TestStudentController_Lists(t *testing.T) {
	r := newStudentRouter(studentClaims("S1"), &stubStudentService{}, &stubAuditService{}, &stubRegistrationService{})

	rec := doJSON(r, http.MethodGet, "/students/S1/grades", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"unit_name":"Programming 1","grade":"A","semester":"S1","year":2025}]`, rec.Body.String())

	rec = doJSON(r, http.MethodGet, "/students/S1/audit", "")
	assert.JSONEq(t, `[{"title":"Programming 1","grade":"A","status":"Passed"}]`, rec.Body.String())

	rec = doJSON(r, http.MethodGet, "/students/S1/history", "")
	assert.Equal(t, "[]", rec.Body.String())
}

func TestStudentController_NotFound(t *testing.T) {
	ss := &stubStudentService{err: apperrors.ErrStudentNotFound}
	as := &stubAuditService{err: apperrors.ErrStudentNotFound}
	r := newStudentRouter(adminClaims(), ss, as, &stubRegistrationService{})

	for _, path := range []string{"/students/S9/details", "/students/S9/full-audit"} {
		rec := doJSON(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Equal(t, "Student not found", errorBody(t, rec).Message)
	}
}

func TestStudentController_FullAudit(t *testing.T) {
	grade := "B"
	as := &stubAuditService{full: &dto.FullAuditResponse{
		Student: dto.AuditStudent{StudentID: "S1", ProgramTitle: "CS"},
		Units: []dto.AuditUnit{{
			UnitCode: "CS101", Title: "Programming 1", YearOffered: 1, SemesterOffered: "S1",
			Prerequisites: []string{}, IsPrerequisite: true, IsRegistered: true, Grade: &grade, IsCompleted: true,
		}},
	}}
	r := newStudentRouter(studentClaims("S1"), &stubStudentService{}, as, &stubRegistrationService{})

	rec := doJSON(r, http.MethodGet, "/students/S1/full-audit", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	units := body["units"].([]interface{})
	unit := units[0].(map[string]interface{})
	assert.Equal(t, "CS101", unit["unitCode"])
	assert.Equal(t, true, unit["isPrerequisite"])
	assert.Equal(t, true, unit["isRegistered"])
	assert.Equal(t, "B", unit["grade"])
}

func TestStudentController_RegisterUnits(t *testing.T) {
	rs := &stubRegistrationService{}
	r := newStudentRouter(studentClaims("S1"), &stubStudentService{}, &stubAuditService{}, rs)

	body := `{"student_id":"S1","units":[{"unit_code":"CS101","semester":"S1","program_year":1},{"unit_code":"CS102","semester":"S1","program_year":1}]}`
	rec := doJSON(r, http.MethodPost, "/students/register-units", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Units registered successfully!"}`, rec.Body.String())
	assert.Equal(t, "S1", rs.studentID)
	require.Len(t, rs.units, 2)
	assert.Equal(t, "CS102", rs.units[1].UnitCode)
}

func TestStudentController_RegisterUnitsRejections(t *testing.T) {
	capacity := apperrors.NewCustomError(apperrors.ErrRegistrationLimit,
		"You can only register for up to 4 units in S1. You already have 4 units.").
		WithKind(apperrors.ErrValidationFailed)

	tests := []struct {
		name    string
		claims  *auth.Claims
		body    string
		svcErr  error
		status  int
		message string
	}{
		{
			name:    "capacity",
			claims:  studentClaims("S1"),
			body:    `{"student_id":"S1","units":[{"unit_code":"CS105","semester":"S1"}]}`,
			svcErr:  capacity,
			status:  http.StatusBadRequest,
			message: capacity.Message,
		},
		{
			name:   "other student",
			claims: studentClaims("S2"),
			body:   `{"student_id":"S1","units":[]}`,
			status: http.StatusForbidden,
		},
		{
			name:   "missing student id",
			claims: adminClaims(),
			body:   `{"units":[]}`,
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := &stubRegistrationService{err: tt.svcErr}
			r := newStudentRouter(tt.claims, &stubStudentService{}, &stubAuditService{}, rs)

			rec := doJSON(r, http.MethodPost, "/students/register-units", tt.body)

			assert.Equal(t, tt.status, rec.Code)
			if tt.message != "" {
				assert.Equal(t, tt.message, errorBody(t, rec).Message)
			}
		})
	}
}

func TestStudentController_AvailableUnits(t *testing.T) {
	ss := &stubStudentService{units: []dto.AvailableUnitResponse{{UnitCode: "CS101", Title: "Programming 1"}}}
	r := newStudentRouter(studentClaims("S1"), ss, &stubAuditService{}, &stubRegistrationService{})

	rec := doJSON(r, http.MethodGet, "/students/available-units?programTitle=CS&yearOffered=1&semester=S1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"unit_code":"CS101","title":"Programming 1"}]`, rec.Body.String())
	assert.Equal(t, 1, ss.gotYear)

	rec = doJSON(r, http.MethodGet, "/students/available-units?programTitle=CS&semester=S1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func newAdminRouter(svc *stubAdminService) *gin.Engine {
	ctrl := NewAdminController(svc, zerolog.Nop())
	r := gin.New()
	r.POST("/admin/student", ctrl.CreateStudent)
	r.PUT("/admin/invoice/:studentId", ctrl.UpsertInvoice)
	r.PUT("/admin/grade/:studentId/:unitId", ctrl.UpsertGrade)
	r.POST("/admin/program", ctrl.CreateProgram)
	r.POST("/admin/unit", ctrl.CreateUnit)
	return r
}

func TestAdminController_CreateStudent(t *testing.T) {
	svc := &stubAdminService{}
	r := newAdminRouter(svc)
	body := `{"student_id":"S2","password":"secret1","first_name":"Alan","last_name":"Turing","program_id":1}`

	rec := doJSON(r, http.MethodPost, "/admin/student", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Student created successfully"}`, rec.Body.String())

	svc.err = apperrors.NewCustomError(apperrors.ErrStudentIDAlreadyExists, "Student already exists").
		WithKind(apperrors.ErrValidationFailed)
	rec = doJSON(r, http.MethodPost, "/admin/student", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Student already exists", errorBody(t, rec).Message)
}

func TestAdminController_UpsertMessages(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		path    string
		body    string
		created bool
		message string
	}{
		{"invoice created", http.MethodPut, "/admin/invoice/S1", `{"total_fees":4500,"amount_paid":0}`, true, "Invoice created successfully"},
		{"invoice updated", http.MethodPut, "/admin/invoice/S1", `{"total_fees":4500,"amount_paid":100,"holds":"None"}`, false, "Invoice updated successfully"},
		{"grade created", http.MethodPut, "/admin/grade/S1/10", `{"grade":"A","semester":"S1","year":2025}`, true, "Grade created successfully"},
		{"grade updated", http.MethodPut, "/admin/grade/S1/10", `{"grade":"C","semester":"S1","year":2025}`, false, "Grade updated successfully"},
		{"program", http.MethodPost, "/admin/program", `{"title":"CS","program_year":2025}`, false, "Program created successfully"},
		{"unit", http.MethodPost, "/admin/unit", `{"title":"P1","unit_code":"CS101","semester_offered":"S1","program_id":1}`, false, "Unit created successfully"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAdminRouter(&stubAdminService{created: tt.created})
			rec := doJSON(r, tt.method, tt.path, tt.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.JSONEq(t, `{"message":"`+tt.message+`"}`, rec.Body.String())
		})
	}
}

func TestAdminController_Failures(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		err    error
		status int
	}{
		{"bad unit id", http.MethodPut, "/admin/grade/S1/abc", `{"grade":"A","semester":"S1","year":2025}`, nil, http.StatusBadRequest},
		{"bad grade letter", http.MethodPut, "/admin/grade/S1/10", `{"grade":"Z","semester":"S1","year":2025}`, nil, http.StatusBadRequest},
		{"invoice missing fees", http.MethodPut, "/admin/invoice/S1", `{"holds":"x"}`, nil, http.StatusBadRequest},
		{"invoice unknown student", http.MethodPut, "/admin/invoice/S9", `{"total_fees":1,"amount_paid":0}`, apperrors.ErrStudentNotFound, http.StatusNotFound},
		{"unit unknown program", http.MethodPost, "/admin/unit", `{"title":"P1","unit_code":"CS101","semester_offered":"S1","program_id":9}`, apperrors.ErrProgramNotFound, http.StatusNotFound},
		{"program missing title", http.MethodPost, "/admin/program", `{}`, nil, http.StatusBadRequest},
		{"store failure", http.MethodPost, "/admin/program", `{"title":"CS"}`, context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAdminRouter(&stubAdminService{err: tt.err})
			rec := doJSON(r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}
