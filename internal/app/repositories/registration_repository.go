package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/db"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
	"github.com/yigit/unirecords/internal/pkg/dberrors"
)

// IRegistrationRepository is the registered-unit surface used by the services
type IRegistrationRepository interface {
	WithTx(tx pgx.Tx) IRegistrationRepository
	LockSemester(ctx context.Context, studentID, semester string) error
	CountRegistered(ctx context.Context, studentID, semester string) (int, error)
	IsRegistered(ctx context.Context, studentID, unitCode, semester string) (bool, error)
	Insert(ctx context.Context, reg *models.RegisteredUnit) error
	RegisteredUnitCodes(ctx context.Context, studentID string) (map[string]bool, error)
}

// RegistrationRepository handles database operations for registered units
type RegistrationRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(conn db.DBTX) *RegistrationRepository {
	return &RegistrationRepository{
		db: conn,
		sb: statementBuilder,
	}
}

// WithTx returns a copy bound to the transaction
func (r *RegistrationRepository) WithTx(tx pgx.Tx) IRegistrationRepository {
	return &RegistrationRepository{db: tx, sb: r.sb}
}

// LockSemester takes a transaction scoped advisory lock for the pair. It must
// run inside a transaction; the lock is released on commit or rollback.
func (r *RegistrationRepository) LockSemester(ctx context.Context, studentID, semester string) error {
	_, err := r.db.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtext($1), hashtext($2))`,
		studentID, semester,
	)
	if err != nil {
		return fmt.Errorf("error locking registrations for %s/%s: %w", studentID, semester, err)
	}
	return nil
}

// CountRegistered counts a student's units in one semester
func (r *RegistrationRepository) CountRegistered(ctx context.Context, studentID, semester string) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("registered_units").
		Where(squirrel.Eq{"student_id": studentID, "semester": semester}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting registered units: %w", err)
	}
	return count, nil
}

// IsRegistered checks for an existing registration of the unit in the semester
func (r *RegistrationRepository) IsRegistered(ctx context.Context, studentID, unitCode, semester string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM registered_units
			WHERE student_id = $1 AND unit_code = $2 AND semester = $3
		)`,
		studentID, unitCode, semester,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking registration: %w", err)
	}
	return exists, nil
}

// Insert writes a registration row
func (r *RegistrationRepository) Insert(ctx context.Context, reg *models.RegisteredUnit) error {
	sql, args, err := r.sb.Insert("registered_units").
		Columns("student_id", "unit_code", "semester", "program_year").
		Values(reg.StudentID, reg.UnitCode, reg.Semester, reg.ProgramYear).
		Suffix("RETURNING id, registered_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build registration insert: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&reg.ID, &reg.RegisteredAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "registered_units_student_unit_semester_key") {
			return apperrors.ErrDuplicateRegistration
		}
		if dberrors.IsForeignKeyViolation(err, "") {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error inserting registration: %w", err)
	}
	return nil
}

// RegisteredUnitCodes returns the set of unit codes a student has registered for
func (r *RegistrationRepository) RegisteredUnitCodes(ctx context.Context, studentID string) (map[string]bool, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT unit_code FROM registered_units WHERE student_id = $1`,
		studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying registered units: %w", err)
	}
	defer rows.Close()

	codes := make(map[string]bool)
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("error scanning registered unit: %w", err)
		}
		codes[code] = true
	}
	return codes, rows.Err()
}
