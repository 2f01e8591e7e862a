package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/app/repositories"
	"github.com/yigit/unirecords/internal/db"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
	"github.com/yigit/unirecords/internal/pkg/metrics"
	"github.com/yigit/unirecords/internal/pkg/validation"
)

// RegistrationSuccessMessage is returned when a batch commits
const RegistrationSuccessMessage = "Units registered successfully!"

// RegistrationService registers students into units
type RegistrationService interface {
	RegisterUnits(ctx context.Context, studentID string, units []models.UnitRegistration) (string, error)
}

type registrationServiceImpl struct {
	tx            db.Transactor
	registrations repositories.IRegistrationRepository
	metrics       *metrics.Metrics
	logger        zerolog.Logger
}

// NewRegistrationService creates a new RegistrationService
func NewRegistrationService(
	tx db.Transactor,
	registrations repositories.IRegistrationRepository,
	m *metrics.Metrics,
	logger zerolog.Logger,
) RegistrationService {
	return &registrationServiceImpl{
		tx:            tx,
		registrations: registrations,
		metrics:       m,
		logger:        logger,
	}
}

// RegisterUnits registers a batch of units. The batch is all-or-nothing: any
// capacity or duplicate violation rolls back every row of the batch.
func (s *registrationServiceImpl) RegisterUnits(ctx context.Context, studentID string, units []models.UnitRegistration) (string, error) {
	if len(units) == 0 {
		return RegistrationSuccessMessage, nil
	}
	if err := validateRegistration(studentID, units); err != nil {
		return "", err
	}

	groups := models.GroupBySemester(units)

	err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		repo := s.registrations.WithTx(tx)
		for _, group := range groups {
			if err := s.registerGroup(ctx, repo, studentID, group); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.metrics.ObserveRegistration(registrationOutcome(err))
		s.logger.Warn().Err(err).
			Str("studentID", studentID).
			Int("units", len(units)).
			Msg("Unit registration rejected")
		return "", err
	}

	s.metrics.ObserveRegistration(metrics.OutcomeRegistered)
	s.logger.Info().
		Str("studentID", studentID).
		Int("units", len(units)).
		Int("semesters", len(groups)).
		Msg("Units registered")
	return RegistrationSuccessMessage, nil
}

func (s *registrationServiceImpl) registerGroup(ctx context.Context, repo repositories.IRegistrationRepository, studentID string, group models.SemesterGroup) error {
	if err := repo.LockSemester(ctx, studentID, group.Semester); err != nil {
		return err
	}

	existing, err := repo.CountRegistered(ctx, studentID, group.Semester)
	if err != nil {
		return err
	}
	if existing+len(group.Units) > models.MaxUnitsPerSemester {
		return capacityError(group.Semester, existing)
	}

	for _, unit := range group.Units {
		registered, err := repo.IsRegistered(ctx, studentID, unit.UnitCode, unit.Semester)
		if err != nil {
			return err
		}
		if registered {
			return duplicateError(unit.UnitCode, unit.Semester)
		}

		err = repo.Insert(ctx, &models.RegisteredUnit{
			StudentID:   studentID,
			UnitCode:    unit.UnitCode,
			Semester:    unit.Semester,
			ProgramYear: unit.ProgramYear,
		})
		if err != nil {
			if errors.Is(err, apperrors.ErrDuplicateRegistration) {
				return duplicateError(unit.UnitCode, unit.Semester)
			}
			return err
		}
	}
	return nil
}

func validateRegistration(studentID string, units []models.UnitRegistration) error {
	if !validation.NewStringValidation(studentID).Validate() {
		return apperrors.NewValidationError("student_id is required")
	}
	for i, unit := range units {
		if !validation.NewStringValidation(unit.UnitCode).Validate() {
			return apperrors.NewValidationError(fmt.Sprintf("units[%d].unit_code is required", i))
		}
		if !validation.IsSemester(unit.Semester) {
			return apperrors.NewValidationError(fmt.Sprintf("units[%d].semester is required", i))
		}
		if !validation.NewNumericValidation(unit.ProgramYear).WithMin(0).Validate() {
			return apperrors.NewValidationError(fmt.Sprintf("units[%d].program_year must not be negative", i))
		}
	}
	return nil
}

func capacityError(semester string, existing int) error {
	msg := fmt.Sprintf("You can only register for up to %d units in %s. You already have %d units.",
		models.MaxUnitsPerSemester, semester, existing)
	return apperrors.NewCustomError(apperrors.ErrRegistrationLimit, msg).
		WithKind(apperrors.ErrValidationFailed).
		WithDetails(map[string]interface{}{"semester": semester, "existing": existing})
}

func duplicateError(unitCode, semester string) error {
	msg := fmt.Sprintf("Unit %s has already been registered for %s.", unitCode, semester)
	return apperrors.NewCustomError(apperrors.ErrDuplicateRegistration, msg).
		WithKind(apperrors.ErrValidationFailed).
		WithDetails(map[string]interface{}{"unit_code": unitCode, "semester": semester})
}

func registrationOutcome(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrRegistrationLimit):
		return metrics.OutcomeCapacityExceeded
	case errors.Is(err, apperrors.ErrDuplicateRegistration):
		return metrics.OutcomeDuplicate
	default:
		return metrics.OutcomeError
	}
}
