package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/app/models/dto"
	"github.com/yigit/unirecords/internal/app/services"
	"github.com/yigit/unirecords/internal/middleware"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
)

// StudentController serves student records and unit registration
type StudentController struct {
	studentService      services.StudentService
	auditService        services.AuditService
	registrationService services.RegistrationService
	logger              zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(
	studentService services.StudentService,
	auditService services.AuditService,
	registrationService services.RegistrationService,
	logger zerolog.Logger,
) *StudentController {
	return &StudentController{
		studentService:      studentService,
		auditService:        auditService,
		registrationService: registrationService,
		logger:              logger,
	}
}

// GetInvoice returns a student's invoice
// @Summary Get invoice
// @Description Returns the student's invoice, or null when none has been issued.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/{id}/invoice [get]
func (c *StudentController) GetInvoice(ctx *gin.Context) {
	invoice, err := c.studentService.GetInvoice(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, invoice)
}

// GetGrades lists a student's grades
// @Summary Get grades
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {array} dto.GradeResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/{id}/grades [get]
func (c *StudentController) GetGrades(ctx *gin.Context) {
	grades, err := c.studentService.GetGrades(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, grades)
}

// GetAudit returns the pass/fail audit
// @Summary Get pass/fail audit
// @Description Each graded unit with status Passed for A-D, Failed otherwise.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {array} dto.AuditEntryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/{id}/audit [get]
func (c *StudentController) GetAudit(ctx *gin.Context) {
	audit, err := c.auditService.GetAudit(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, audit)
}

// GetFullAudit returns the program audit
// @Summary Get full program audit
// @Description Every unit of the student's program with prerequisite, registration and grade state.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.FullAuditResponse
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/{id}/full-audit [get]
func (c *StudentController) GetFullAudit(ctx *gin.Context) {
	audit, err := c.auditService.GetFullAudit(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, audit)
}

// GetHistory lists a student's unit history
// @Summary Get unit history
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {array} dto.HistoryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/{id}/history [get]
func (c *StudentController) GetHistory(ctx *gin.Context) {
	history, err := c.studentService.GetHistory(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, history)
}

// GetDetails returns the student summary
// @Summary Get student details
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.StudentDetailsResponse
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/{id}/details [get]
func (c *StudentController) GetDetails(ctx *gin.Context) {
	details, err := c.studentService.GetDetails(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, details)
}

// RegisterUnits registers a batch of units
// @Summary Register units
// @Description Registers units for a student. At most 4 units per semester; the whole batch is rejected on any violation.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterUnitsRequest true "Units to register"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Capacity exceeded, duplicate registration or invalid body"
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/register-units [post]
func (c *StudentController) RegisterUnits(ctx *gin.Context) {
	var req dto.RegisterUnitsRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	claims, _ := middleware.GetClaims(ctx)
	if !middleware.CanAccessStudent(claims, req.StudentID) {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	units := make([]models.UnitRegistration, 0, len(req.Units))
	for _, u := range req.Units {
		units = append(units, models.UnitRegistration{
			UnitCode:    u.UnitCode,
			Semester:    u.Semester,
			ProgramYear: u.ProgramYear,
		})
	}

	msg, err := c.registrationService.RegisterUnits(ctx.Request.Context(), req.StudentID, units)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: msg})
}

// GetAvailableUnits lists units offered for a program, year and semester
// @Summary Get available units
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param programTitle query string true "Program title"
// @Param yearOffered query int true "Year offered"
// @Param semester query string true "Semester"
// @Success 200 {array} dto.AvailableUnitResponse
// @Failure 400 {object} dto.ErrorResponse "Missing query parameters"
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/available-units [get]
func (c *StudentController) GetAvailableUnits(ctx *gin.Context) {
	var q dto.AvailableUnitsQuery
	if !middleware.BindQuery(ctx, &q) {
		return
	}

	units, err := c.studentService.GetAvailableUnits(ctx.Request.Context(), q.ProgramTitle, *q.YearOffered, q.Semester)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, units)
}
