package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/unirecords/internal/app/models/dto"
	"github.com/yigit/unirecords/internal/app/repositories"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
)

// StudentService answers read queries about a student
type StudentService interface {
	GetInvoice(ctx context.Context, studentID string) (*dto.InvoiceResponse, error)
	GetGrades(ctx context.Context, studentID string) ([]dto.GradeResponse, error)
	GetHistory(ctx context.Context, studentID string) ([]dto.HistoryResponse, error)
	GetDetails(ctx context.Context, studentID string) (*dto.StudentDetailsResponse, error)
	GetAvailableUnits(ctx context.Context, programTitle string, yearOffered int, semester string) ([]dto.AvailableUnitResponse, error)
}

type studentServiceImpl struct {
	studentRepo repositories.IStudentRepository
	invoiceRepo repositories.IInvoiceRepository
	gradeRepo   repositories.IGradeRepository
	historyRepo repositories.IHistoryRepository
	unitRepo    repositories.IUnitRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepo repositories.IStudentRepository,
	invoiceRepo repositories.IInvoiceRepository,
	gradeRepo repositories.IGradeRepository,
	historyRepo repositories.IHistoryRepository,
	unitRepo repositories.IUnitRepository,
	logger zerolog.Logger,
) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		invoiceRepo: invoiceRepo,
		gradeRepo:   gradeRepo,
		historyRepo: historyRepo,
		unitRepo:    unitRepo,
		logger:      logger,
	}
}

// GetInvoice returns the invoice, or nil when none was issued
func (s *studentServiceImpl) GetInvoice(ctx context.Context, studentID string) (*dto.InvoiceResponse, error) {
	inv, err := s.invoiceRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error fetching invoice: %w", err)
	}
	if inv == nil {
		return nil, nil
	}
	return &dto.InvoiceResponse{
		StudentID:  inv.StudentID,
		TotalFees:  inv.TotalFees,
		AmountPaid: inv.AmountPaid,
		Holds:      inv.Holds,
	}, nil
}

func (s *studentServiceImpl) GetGrades(ctx context.Context, studentID string) ([]dto.GradeResponse, error) {
	records, err := s.gradeRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error fetching grades: %w", err)
	}

	grades := make([]dto.GradeResponse, 0, len(records))
	for _, r := range records {
		grades = append(grades, dto.GradeResponse{
			UnitName: r.UnitName,
			Grade:    r.Grade,
			Semester: r.Semester,
			Year:     r.Year,
		})
	}
	return grades, nil
}

func (s *studentServiceImpl) GetHistory(ctx context.Context, studentID string) ([]dto.HistoryResponse, error) {
	entries, err := s.historyRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error fetching history: %w", err)
	}

	history := make([]dto.HistoryResponse, 0, len(entries))
	for _, e := range entries {
		history = append(history, dto.HistoryResponse{
			Title:     e.Title,
			Action:    e.Action,
			Timestamp: e.Timestamp,
		})
	}
	return history, nil
}

// GetDetails returns the student summary; unknown students are not found
func (s *studentServiceImpl) GetDetails(ctx context.Context, studentID string) (*dto.StudentDetailsResponse, error) {
	student, err := s.studentRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return &dto.StudentDetailsResponse{
		StudentID:    student.StudentID,
		FirstName:    student.FirstName,
		LastName:     student.LastName,
		ProgramTitle: student.ProgramTitle,
		ProgramYear:  student.ProgramYear,
	}, nil
}

func (s *studentServiceImpl) GetAvailableUnits(ctx context.Context, programTitle string, yearOffered int, semester string) ([]dto.AvailableUnitResponse, error) {
	programTitle = strings.TrimSpace(programTitle)
	semester = strings.TrimSpace(semester)
	if programTitle == "" || semester == "" {
		return nil, apperrors.NewValidationError("programTitle, yearOffered and semester are required")
	}

	units, err := s.unitRepo.ListAvailable(ctx, programTitle, yearOffered, semester)
	if err != nil {
		return nil, fmt.Errorf("error fetching units: %w", err)
	}

	available := make([]dto.AvailableUnitResponse, 0, len(units))
	for _, u := range units {
		available = append(available, dto.AvailableUnitResponse{
			UnitCode: u.UnitCode,
			Title:    u.Title,
		})
	}
	return available, nil
}
