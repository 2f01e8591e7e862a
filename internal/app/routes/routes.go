package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unirecords/internal/app/controllers"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/app/models/dto"
	"github.com/yigit/unirecords/internal/middleware"
	"github.com/yigit/unirecords/internal/pkg/metrics"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
	m *metrics.Metrics,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
	})
	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	api := router.Group("/api")

	// --- Public Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Student routes ---
	students := api.Group("/students")
	students.Use(authMiddleware.JWTAuth())
	{
		// Ownership of the body's student_id is checked in the controller
		students.POST("/register-units", studentController.RegisterUnits)
		students.GET("/available-units", studentController.GetAvailableUnits)

		own := students.Group("/:id")
		own.Use(authMiddleware.SelfOrAdmin("id"))
		{
			own.GET("/invoice", studentController.GetInvoice)
			own.GET("/grades", studentController.GetGrades)
			own.GET("/audit", studentController.GetAudit)
			own.GET("/full-audit", studentController.GetFullAudit)
			own.GET("/history", studentController.GetHistory)
			own.GET("/details", studentController.GetDetails)
		}
	}

	// --- Admin routes ---
	admin := api.Group("/admin")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.UserTypeAdmin))
	{
		admin.POST("/student", adminController.CreateStudent)
		admin.PUT("/invoice/:studentId", adminController.UpsertInvoice)
		admin.PUT("/grade/:studentId/:unitId", adminController.UpsertGrade)
		admin.POST("/program", adminController.CreateProgram)
		admin.POST("/unit", adminController.CreateUnit)
	}
}
