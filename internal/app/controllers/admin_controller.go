package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/unirecords/internal/app/models/dto"
	"github.com/yigit/unirecords/internal/app/services"
	"github.com/yigit/unirecords/internal/middleware"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
)

// AdminController handles administrative record mutation
type AdminController struct {
	adminService services.AdminService
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		adminService: adminService,
		logger:       logger,
	}
}

// CreateStudent creates a student account
// @Summary Create student
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Student already exists or invalid body"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/student [post]
func (c *AdminController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if _, err := c.adminService.CreateStudent(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student created successfully"})
}

// UpsertInvoice creates or updates a student's invoice
// @Summary Create or update invoice
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Param request body dto.UpsertInvoiceRequest true "Invoice"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/invoice/{studentId} [put]
func (c *AdminController) UpsertInvoice(ctx *gin.Context) {
	var req dto.UpsertInvoiceRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	created, err := c.adminService.UpsertInvoice(ctx.Request.Context(), ctx.Param("studentId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	msg := "Invoice updated successfully"
	if created {
		msg = "Invoice created successfully"
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: msg})
}

// UpsertGrade creates or updates a student's grade for a unit
// @Summary Create or update grade
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Param unitId path int true "Unit ID"
// @Param request body dto.UpsertGradeRequest true "Grade"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Student or unit not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/grade/{studentId}/{unitId} [put]
func (c *AdminController) UpsertGrade(ctx *gin.Context) {
	unitID, err := strconv.ParseInt(ctx.Param("unitId"), 10, 64)
	if err != nil || unitID <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("unitId must be a positive integer"))
		return
	}

	var req dto.UpsertGradeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	created, err := c.adminService.UpsertGrade(ctx.Request.Context(), ctx.Param("studentId"), unitID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	msg := "Grade updated successfully"
	if created {
		msg = "Grade created successfully"
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: msg})
}

// CreateProgram creates a degree program
// @Summary Create program
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProgramRequest true "Program"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/program [post]
func (c *AdminController) CreateProgram(ctx *gin.Context) {
	var req dto.CreateProgramRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if _, err := c.adminService.CreateProgram(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Program created successfully"})
}

// CreateUnit creates a unit in a program
// @Summary Create unit
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUnitRequest true "Unit"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/unit [post]
func (c *AdminController) CreateUnit(ctx *gin.Context) {
	var req dto.CreateUnitRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if _, err := c.adminService.CreateUnit(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Unit created successfully"})
}
