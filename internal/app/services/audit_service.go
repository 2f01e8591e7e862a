package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/app/models/dto"
	"github.com/yigit/unirecords/internal/app/repositories"
)

// Audit statuses
const (
	AuditStatusPassed = "Passed"
	AuditStatusFailed = "Failed"
)

// AuditService builds program audits for students
type AuditService interface {
	GetFullAudit(ctx context.Context, studentID string) (*dto.FullAuditResponse, error)
	GetAudit(ctx context.Context, studentID string) ([]dto.AuditEntryResponse, error)
}

type auditServiceImpl struct {
	studentRepo      repositories.IStudentRepository
	unitRepo         repositories.IUnitRepository
	prerequisiteRepo repositories.IPrerequisiteRepository
	registrationRepo repositories.IRegistrationRepository
	gradeRepo        repositories.IGradeRepository
	logger           zerolog.Logger
}

// NewAuditService creates a new AuditService
func NewAuditService(
	studentRepo repositories.IStudentRepository,
	unitRepo repositories.IUnitRepository,
	prerequisiteRepo repositories.IPrerequisiteRepository,
	registrationRepo repositories.IRegistrationRepository,
	gradeRepo repositories.IGradeRepository,
	logger zerolog.Logger,
) AuditService {
	return &auditServiceImpl{
		studentRepo:      studentRepo,
		unitRepo:         unitRepo,
		prerequisiteRepo: prerequisiteRepo,
		registrationRepo: registrationRepo,
		gradeRepo:        gradeRepo,
		logger:           logger,
	}
}

// GetFullAudit lists every unit of the student's program annotated with
// prerequisite, registration and grade state.
func (s *auditServiceImpl) GetFullAudit(ctx context.Context, studentID string) (*dto.FullAuditResponse, error) {
	student, err := s.studentRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	units, err := s.unitRepo.ListByProgram(ctx, student.ProgramTitle)
	if err != nil {
		return nil, fmt.Errorf("error loading program units: %w", err)
	}

	prereqCodes, err := s.prerequisiteRepo.PrerequisiteCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading prerequisite codes: %w", err)
	}

	codes := make([]string, 0, len(units))
	for _, u := range units {
		codes = append(codes, u.UnitCode)
	}
	prereqsByUnit, err := s.prerequisiteRepo.ListForUnits(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("error loading unit prerequisites: %w", err)
	}

	registered, err := s.registrationRepo.RegisteredUnitCodes(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error loading registrations: %w", err)
	}

	grades, err := s.gradeRepo.ListUnitGrades(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error loading grades: %w", err)
	}

	s.logger.Debug().
		Str("studentID", studentID).
		Int("units", len(units)).
		Msg("Full audit built")

	return BuildFullAudit(student, units, prereqCodes, prereqsByUnit, registered, grades), nil
}

// GetAudit returns a pass/fail line for each graded unit
func (s *auditServiceImpl) GetAudit(ctx context.Context, studentID string) ([]dto.AuditEntryResponse, error) {
	grades, err := s.gradeRepo.ListUnitGrades(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error loading grades: %w", err)
	}

	entries := make([]dto.AuditEntryResponse, 0, len(grades))
	for _, g := range grades {
		status := AuditStatusFailed
		if models.IsPassingGrade(g.Grade) {
			status = AuditStatusPassed
		}
		entries = append(entries, dto.AuditEntryResponse{
			Title:  g.Title,
			Grade:  g.Grade,
			Status: status,
		})
	}
	return entries, nil
}

// BuildFullAudit joins the fetched rows into the audit projection. Unit
// order is preserved; a unit counts as a prerequisite when any unit in the
// catalog requires it.
func BuildFullAudit(
	student *models.Student,
	units []models.Unit,
	prereqCodes map[string]bool,
	prereqsByUnit map[string][]string,
	registered map[string]bool,
	grades []models.UnitGrade,
) *dto.FullAuditResponse {
	gradeByCode := make(map[string]string, len(grades))
	for _, g := range grades {
		gradeByCode[g.UnitCode] = g.Grade
	}

	resp := &dto.FullAuditResponse{
		Student: dto.AuditStudent{
			StudentID:    student.StudentID,
			FirstName:    student.FirstName,
			LastName:     student.LastName,
			ProgramTitle: student.ProgramTitle,
			ProgramYear:  student.ProgramYear,
		},
		Units: make([]dto.AuditUnit, 0, len(units)),
	}

	for _, u := range units {
		prereqs := prereqsByUnit[u.UnitCode]
		if prereqs == nil {
			prereqs = []string{}
		}

		item := dto.AuditUnit{
			UnitCode:        u.UnitCode,
			Title:           u.Title,
			YearOffered:     u.YearOffered,
			SemesterOffered: u.SemesterOffered,
			Prerequisites:   prereqs,
			IsPrerequisite:  prereqCodes[u.UnitCode],
			IsRegistered:    registered[u.UnitCode],
		}
		if grade, ok := gradeByCode[u.UnitCode]; ok {
			g := grade
			item.Grade = &g
			item.IsCompleted = models.IsPassingGrade(grade)
		}
		resp.Units = append(resp.Units, item)
	}
	return resp
}
