package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/db"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
	"github.com/yigit/unirecords/internal/pkg/dberrors"
	"github.com/yigit/unirecords/internal/pkg/logger"
)

// IStudentRepository is the student lookup surface used by the services
type IStudentRepository interface {
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	ExistsByStudentID(ctx context.Context, studentID string) (bool, error)
	GetCredential(ctx context.Context, studentID string) (*models.Credential, error)
	Create(ctx context.Context, student *models.Student) error
}

var studentColumns = []string{
	"id",
	"student_id",
	"password",
	"first_name",
	"last_name",
	"COALESCE(email, '')",
	"COALESCE(address, '')",
	"COALESCE(phone, '')",
	"COALESCE(program_title, '')",
	"COALESCE(program_year, 0)",
	"created_at",
}

// StudentRepository handles database operations for students
type StudentRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(conn db.DBTX) *StudentRepository {
	return &StudentRepository{
		db: conn,
		sb: statementBuilder,
	}
}

// GetByStudentID retrieves a student by its external identifier
func (r *StudentRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"student_id": studentID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	var s models.Student
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&s.ID,
		&s.StudentID,
		&s.Password,
		&s.FirstName,
		&s.LastName,
		&s.Email,
		&s.Address,
		&s.Phone,
		&s.ProgramTitle,
		&s.ProgramYear,
		&s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student: %w", err)
	}

	return &s, nil
}

// ExistsByStudentID checks whether a student identifier is taken
func (r *StudentRepository) ExistsByStudentID(ctx context.Context, studentID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE student_id = $1)`,
		studentID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

// GetCredential loads what is needed to verify a student login
func (r *StudentRepository) GetCredential(ctx context.Context, studentID string) (*models.Credential, error) {
	cred := &models.Credential{UserType: models.UserTypeStudent}
	err := r.db.QueryRow(ctx,
		`SELECT id, student_id, password FROM students WHERE student_id = $1`,
		studentID,
	).Scan(&cred.ID, &cred.Identifier, &cred.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student credential: %w", err)
	}
	return cred, nil
}

// Create inserts a student. The password must already be hashed.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("student_id", "password", "first_name", "last_name", "email", "address", "phone", "program_title", "program_year").
		Values(
			student.StudentID,
			student.Password,
			student.FirstName,
			student.LastName,
			nullIfEmpty(student.Email),
			nullIfEmpty(student.Address),
			nullIfEmpty(student.Phone),
			nullIfEmpty(student.ProgramTitle),
			student.ProgramYear,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.ID, &student.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_student_id_key") {
			return apperrors.ErrStudentIDAlreadyExists
		}
		logger.Error().Err(err).Str("studentID", student.StudentID).Msg("Error creating student")
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// nullIfEmpty stores optional text columns as NULL rather than ''
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
