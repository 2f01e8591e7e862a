package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/app/models/dto"
	"github.com/yigit/unirecords/internal/app/repositories"
	"github.com/yigit/unirecords/internal/db"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
	"github.com/yigit/unirecords/internal/pkg/auth"
	"github.com/yigit/unirecords/internal/pkg/validation"
)

// AdminService mutates student records and the catalog
type AdminService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	UpsertInvoice(ctx context.Context, studentID string, req *dto.UpsertInvoiceRequest) (bool, error)
	UpsertGrade(ctx context.Context, studentID string, unitID int64, req *dto.UpsertGradeRequest) (bool, error)
	CreateProgram(ctx context.Context, req *dto.CreateProgramRequest) (*models.Program, error)
	CreateUnit(ctx context.Context, req *dto.CreateUnitRequest) (*models.Unit, error)
}

type adminServiceImpl struct {
	tx               db.Transactor
	studentRepo      repositories.IStudentRepository
	programRepo      repositories.IProgramRepository
	unitRepo         repositories.IUnitRepository
	prerequisiteRepo repositories.IPrerequisiteRepository
	invoiceRepo      repositories.IInvoiceRepository
	gradeRepo        repositories.IGradeRepository
	logger           zerolog.Logger
}

// AdminRepositories groups the repositories the admin service writes to
type AdminRepositories struct {
	Students      repositories.IStudentRepository
	Programs      repositories.IProgramRepository
	Units         repositories.IUnitRepository
	Prerequisites repositories.IPrerequisiteRepository
	Invoices      repositories.IInvoiceRepository
	Grades        repositories.IGradeRepository
}

// NewAdminService creates a new AdminService
func NewAdminService(tx db.Transactor, repos AdminRepositories, logger zerolog.Logger) AdminService {
	return &adminServiceImpl{
		tx:               tx,
		studentRepo:      repos.Students,
		programRepo:      repos.Programs,
		unitRepo:         repos.Units,
		prerequisiteRepo: repos.Prerequisites,
		invoiceRepo:      repos.Invoices,
		gradeRepo:        repos.Grades,
		logger:           logger,
	}
}

var errStudentExists = apperrors.NewCustomError(apperrors.ErrStudentIDAlreadyExists, "Student already exists").
	WithKind(apperrors.ErrValidationFailed)

// CreateStudent creates a student account with a bcrypt-hashed password. The
// program is taken from program_id when given, else from program_title.
func (s *adminServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	studentID := strings.TrimSpace(req.StudentID)
	if !validation.IsStudentID(studentID) {
		return nil, apperrors.NewValidationError("student_id may only contain letters, digits, '-' and '_'")
	}
	if len(req.Password) < validation.PasswordMinLength {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("password must be at least %d characters", validation.PasswordMinLength))
	}

	exists, err := s.studentRepo.ExistsByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student: %w", err)
	}
	if exists {
		return nil, errStudentExists
	}

	student := &models.Student{
		StudentID:    studentID,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        strings.TrimSpace(req.Email),
		Address:      strings.TrimSpace(req.Address),
		Phone:        strings.TrimSpace(req.Phone),
		ProgramTitle: strings.TrimSpace(req.ProgramTitle),
		ProgramYear:  req.ProgramYear,
	}

	if req.ProgramID > 0 {
		program, err := s.programRepo.GetByID(ctx, req.ProgramID)
		if err != nil {
			return nil, err
		}
		student.ProgramTitle = program.Title
		if student.ProgramYear == 0 {
			student.ProgramYear = program.ProgramYear
		}
	}
	if student.ProgramTitle == "" {
		return nil, apperrors.NewValidationError("program_id or program_title is required")
	}

	student.Password, err = auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		if errors.Is(err, apperrors.ErrStudentIDAlreadyExists) {
			return nil, errStudentExists
		}
		return nil, err
	}

	s.logger.Info().
		Str("studentID", student.StudentID).
		Str("program", student.ProgramTitle).
		Msg("Student created")
	return student, nil
}

// UpsertInvoice creates or replaces the student's invoice and reports
// whether it was created.
func (s *adminServiceImpl) UpsertInvoice(ctx context.Context, studentID string, req *dto.UpsertInvoiceRequest) (bool, error) {
	if strings.TrimSpace(studentID) == "" {
		return false, apperrors.NewValidationError("studentId is required")
	}
	if req.TotalFees == nil || req.AmountPaid == nil {
		return false, apperrors.NewValidationError("total_fees and amount_paid are required")
	}
	if *req.TotalFees < 0 || *req.AmountPaid < 0 {
		return false, apperrors.NewValidationError("fees must not be negative")
	}

	invoice := &models.Invoice{
		StudentID:  studentID,
		TotalFees:  *req.TotalFees,
		AmountPaid: *req.AmountPaid,
		Holds:      req.Holds,
	}
	created, err := s.invoiceRepo.Upsert(ctx, invoice)
	if err != nil {
		return false, err
	}

	s.logger.Info().
		Str("studentID", studentID).
		Bool("created", created).
		Float64("balance", invoice.Balance()).
		Msg("Invoice saved")
	return created, nil
}

// UpsertGrade creates or replaces the grade for (student, unit) and reports
// whether it was created.
func (s *adminServiceImpl) UpsertGrade(ctx context.Context, studentID string, unitID int64, req *dto.UpsertGradeRequest) (bool, error) {
	if strings.TrimSpace(studentID) == "" {
		return false, apperrors.NewValidationError("studentId is required")
	}
	if unitID <= 0 {
		return false, apperrors.NewValidationError("unitId must be a positive integer")
	}
	letter, ok := validation.NormalizeGrade(req.Grade, models.GradeLetters)
	if !ok {
		return false, apperrors.NewValidationError(
			fmt.Sprintf("grade must be one of: %s", strings.Join(models.GradeLetters, ", ")))
	}

	created, err := s.gradeRepo.Upsert(ctx, &models.Grade{
		StudentID: studentID,
		UnitID:    unitID,
		Semester:  strings.TrimSpace(req.Semester),
		Year:      req.Year,
		Grade:     letter,
	})
	if err != nil {
		return false, err
	}

	s.logger.Info().
		Str("studentID", studentID).
		Int64("unitID", unitID).
		Str("grade", letter).
		Bool("created", created).
		Msg("Grade saved")
	return created, nil
}

func (s *adminServiceImpl) CreateProgram(ctx context.Context, req *dto.CreateProgramRequest) (*models.Program, error) {
	program := &models.Program{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		ProgramYear: req.ProgramYear,
	}
	if program.Title == "" {
		return nil, apperrors.NewValidationError("title is required")
	}

	if err := s.programRepo.Create(ctx, program); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("programID", program.ID).Str("title", program.Title).Msg("Program created")
	return program, nil
}

// CreateUnit creates a unit under an existing program together with its
// prerequisite rows.
func (s *adminServiceImpl) CreateUnit(ctx context.Context, req *dto.CreateUnitRequest) (*models.Unit, error) {
	unit := &models.Unit{
		UnitCode:        strings.TrimSpace(req.UnitCode),
		Title:           strings.TrimSpace(req.Title),
		Description:     strings.TrimSpace(req.Description),
		YearOffered:     req.YearOffered,
		SemesterOffered: strings.TrimSpace(req.SemesterOffered),
		UnitFee:         req.UnitFee,
	}
	if !validation.IsUnitCode(unit.UnitCode) {
		return nil, apperrors.NewValidationError("unit_code may only contain letters, digits, '-' and '_'")
	}

	prereqs, err := normalizePrerequisites(unit.UnitCode, req.Prerequisites)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.unitRepo.WithTx(tx).CreateForProgram(ctx, unit, req.ProgramID); err != nil {
			return err
		}
		prereqRepo := s.prerequisiteRepo.WithTx(tx)
		for _, code := range prereqs {
			if err := prereqRepo.Create(ctx, models.Prerequisite{UnitCode: unit.UnitCode, PrerequisiteCode: code}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("unitID", unit.ID).
		Str("unitCode", unit.UnitCode).
		Str("program", unit.ProgramTitle).
		Int("prerequisites", len(prereqs)).
		Msg("Unit created")
	return unit, nil
}

// normalizePrerequisites trims and de-duplicates codes, rejecting a unit that
// requires itself.
func normalizePrerequisites(unitCode string, codes []string) ([]string, error) {
	seen := make(map[string]bool, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			continue
		}
		if c == unitCode {
			return nil, apperrors.NewValidationError("a unit cannot be its own prerequisite")
		}
		if !validation.IsUnitCode(c) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid prerequisite code %q", c))
		}
		seen[c] = true
		out = append(out, c)
	}
	return out, nil
}
