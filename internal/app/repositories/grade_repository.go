package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/db"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
	"github.com/yigit/unirecords/internal/pkg/dberrors"
	"github.com/yigit/unirecords/internal/pkg/logger"
)

// IGradeRepository is the grade surface used by the services
type IGradeRepository interface {
	Upsert(ctx context.Context, grade *models.Grade) (bool, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.GradeRecord, error)
	ListUnitGrades(ctx context.Context, studentID string) ([]models.UnitGrade, error)
}

// GradeRepository handles database operations for grades
type GradeRepository struct {
	db db.DBTX
}

// NewGradeRepository creates a new grade repository
func NewGradeRepository(conn db.DBTX) *GradeRepository {
	return &GradeRepository{db: conn}
}

// Upsert writes the grade for (student, unit) in a single statement and
// reports whether the row was created.
func (r *GradeRepository) Upsert(ctx context.Context, grade *models.Grade) (bool, error) {
	query := `
		INSERT INTO grades (student_id, unit_id, semester, year, grade)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT ON CONSTRAINT grades_student_unit_key
		DO UPDATE SET grade = EXCLUDED.grade, semester = EXCLUDED.semester, year = EXCLUDED.year
		RETURNING id, (xmax = 0) AS inserted
	`

	var inserted bool
	err := r.db.QueryRow(ctx, query,
		grade.StudentID, grade.UnitID, grade.Semester, grade.Year, grade.Grade,
	).Scan(&grade.ID, &inserted)
	if err != nil {
		switch {
		case dberrors.IsForeignKeyViolation(err, "grades_student_id_fkey"):
			return false, apperrors.ErrStudentNotFound
		case dberrors.IsForeignKeyViolation(err, "grades_unit_id_fkey"):
			return false, apperrors.ErrUnitNotFound
		}
		logger.Error().Err(err).
			Str("studentID", grade.StudentID).
			Int64("unitID", grade.UnitID).
			Msg("Error upserting grade")
		return false, fmt.Errorf("error upserting grade: %w", err)
	}
	return inserted, nil
}

// ListByStudent lists a student's grades with unit titles
func (r *GradeRepository) ListByStudent(ctx context.Context, studentID string) ([]models.GradeRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.title, g.grade, COALESCE(g.semester, ''), COALESCE(g.year, 0)
		FROM grades g
		JOIN units u ON g.unit_id = u.id
		WHERE g.student_id = $1
		ORDER BY g.year, g.semester, u.title
	`, studentID)
	if err != nil {
		return nil, fmt.Errorf("error querying grades: %w", err)
	}
	defer rows.Close()

	records := []models.GradeRecord{}
	for rows.Next() {
		var rec models.GradeRecord
		if err := rows.Scan(&rec.UnitName, &rec.Grade, &rec.Semester, &rec.Year); err != nil {
			return nil, fmt.Errorf("error scanning grade row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ListUnitGrades lists a student's grades keyed by unit code
func (r *GradeRepository) ListUnitGrades(ctx context.Context, studentID string) ([]models.UnitGrade, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.unit_code, u.title, g.grade
		FROM grades g
		JOIN units u ON g.unit_id = u.id
		WHERE g.student_id = $1
		ORDER BY u.unit_code
	`, studentID)
	if err != nil {
		return nil, fmt.Errorf("error querying unit grades: %w", err)
	}
	defer rows.Close()

	grades := []models.UnitGrade{}
	for rows.Next() {
		var g models.UnitGrade
		if err := rows.Scan(&g.UnitCode, &g.Title, &g.Grade); err != nil {
			return nil, fmt.Errorf("error scanning unit grade row: %w", err)
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}
