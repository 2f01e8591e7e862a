package services

import (
	"github.com/rs/zerolog"
	"github.com/yigit/unirecords/internal/app/repositories"
	"github.com/yigit/unirecords/internal/db"
	"github.com/yigit/unirecords/internal/pkg/auth"
	"github.com/yigit/unirecords/internal/pkg/metrics"
)

// Services holds all the service instances
type Services struct {
	AuthService         AuthService
	StudentService      StudentService
	RegistrationService RegistrationService
	AuditService        AuditService
	AdminService        AdminService
}

// NewServices wires every service onto the repositories
func NewServices(
	tx db.Transactor,
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *Services {
	return &Services{
		AuthService: NewAuthService(repos.StudentRepository, repos.AdminRepository, jwtService, m,
			logger.With().Str("service", "auth").Logger()),
		StudentService: NewStudentService(
			repos.StudentRepository,
			repos.InvoiceRepository,
			repos.GradeRepository,
			repos.HistoryRepository,
			repos.UnitRepository,
			logger.With().Str("service", "student").Logger(),
		),
		RegistrationService: NewRegistrationService(tx, repos.RegistrationRepository, m,
			logger.With().Str("service", "registration").Logger()),
		AuditService: NewAuditService(
			repos.StudentRepository,
			repos.UnitRepository,
			repos.PrerequisiteRepository,
			repos.RegistrationRepository,
			repos.GradeRepository,
			logger.With().Str("service", "audit").Logger(),
		),
		AdminService: NewAdminService(tx, AdminRepositories{
			Students:      repos.StudentRepository,
			Programs:      repos.ProgramRepository,
			Units:         repos.UnitRepository,
			Prerequisites: repos.PrerequisiteRepository,
			Invoices:      repos.InvoiceRepository,
			Grades:        repos.GradeRepository,
		}, logger.With().Str("service", "admin").Logger()),
	}
}
