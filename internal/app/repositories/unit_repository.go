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
	"github.com/yigit/unirecords/internal/pkg/logger"
)

// IUnitRepository is the unit catalog surface used by the services
type IUnitRepository interface {
	WithTx(tx pgx.Tx) IUnitRepository
	CreateForProgram(ctx context.Context, unit *models.Unit, programID int64) error
	ListByProgram(ctx context.Context, programTitle string) ([]models.Unit, error)
	ListAvailable(ctx context.Context, programTitle string, yearOffered int, semester string) ([]models.Unit, error)
}

// UnitRepository handles database operations for units
type UnitRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewUnitRepository creates a new unit repository
func NewUnitRepository(conn db.DBTX) *UnitRepository {
	return &UnitRepository{
		db: conn,
		sb: statementBuilder,
	}
}

// WithTx returns a copy bound to the transaction
func (r *UnitRepository) WithTx(tx pgx.Tx) IUnitRepository {
	return &UnitRepository{db: tx, sb: r.sb}
}

// CreateForProgram inserts a unit and copies the program title onto it. The
// program is resolved in the same statement, so no row means no program.
func (r *UnitRepository) CreateForProgram(ctx context.Context, unit *models.Unit, programID int64) error {
	query := `
		INSERT INTO units (title, unit_code, description, semester_offered, year_offered, unit_fee, program_title)
		SELECT $1, $2, $3, $4, $5, $6, p.title
		FROM programs p
		WHERE p.id = $7
		RETURNING id, program_title
	`

	err := r.db.QueryRow(ctx, query,
		unit.Title,
		unit.UnitCode,
		nullIfEmpty(unit.Description),
		unit.SemesterOffered,
		unit.YearOffered,
		unit.UnitFee,
		programID,
	).Scan(&unit.ID, &unit.ProgramTitle)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrProgramNotFound
		}
		logger.Error().Err(err).Str("unitCode", unit.UnitCode).Msg("Error creating unit")
		return fmt.Errorf("error creating unit: %w", err)
	}
	return nil
}

func (r *UnitRepository) selectUnits() squirrel.SelectBuilder {
	return r.sb.Select(
		"id",
		"unit_code",
		"title",
		"COALESCE(description, '')",
		"COALESCE(year_offered, 0)",
		"COALESCE(semester_offered, '')",
		"unit_fee",
		"COALESCE(program_title, '')",
	).From("units")
}

// ListByProgram lists a program's units ordered by year, semester and code
func (r *UnitRepository) ListByProgram(ctx context.Context, programTitle string) ([]models.Unit, error) {
	q := r.selectUnits().
		Where(squirrel.Eq{"program_title": programTitle}).
		OrderBy("year_offered", "semester_offered", "unit_code")
	return r.queryUnits(ctx, q)
}

// ListAvailable lists the units a program offers in a given year and semester
func (r *UnitRepository) ListAvailable(ctx context.Context, programTitle string, yearOffered int, semester string) ([]models.Unit, error) {
	q := r.selectUnits().
		Where(squirrel.Eq{
			"program_title":    programTitle,
			"year_offered":     yearOffered,
			"semester_offered": semester,
		}).
		OrderBy("unit_code")
	return r.queryUnits(ctx, q)
}

func (r *UnitRepository) queryUnits(ctx context.Context, q squirrel.SelectBuilder) ([]models.Unit, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build unit query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing unit query")
		return nil, fmt.Errorf("error querying units: %w", err)
	}
	defer rows.Close()

	units := []models.Unit{}
	for rows.Next() {
		var u models.Unit
		if err := rows.Scan(
			&u.ID,
			&u.UnitCode,
			&u.Title,
			&u.Description,
			&u.YearOffered,
			&u.SemesterOffered,
			&u.UnitFee,
			&u.ProgramTitle,
		); err != nil {
			return nil, fmt.Errorf("error scanning unit row: %w", err)
		}
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating unit rows: %w", err)
	}
	return units, nil
}
