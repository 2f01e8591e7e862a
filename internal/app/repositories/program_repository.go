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

// IProgramRepository is the program surface used by the services
type IProgramRepository interface {
	Create(ctx context.Context, program *models.Program) error
	GetByID(ctx context.Context, id int64) (*models.Program, error)
}

// ProgramRepository handles database operations for programs
type ProgramRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewProgramRepository creates a new program repository
func NewProgramRepository(conn db.DBTX) *ProgramRepository {
	return &ProgramRepository{
		db: conn,
		sb: statementBuilder,
	}
}

// Create creates a new program. Titles are not unique.
func (r *ProgramRepository) Create(ctx context.Context, program *models.Program) error {
	sql, args, err := r.sb.Insert("programs").
		Columns("title", "description", "program_year").
		Values(program.Title, nullIfEmpty(program.Description), program.ProgramYear).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create program query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&program.ID); err != nil {
		logger.Error().Err(err).Str("title", program.Title).Msg("Error creating program")
		return fmt.Errorf("error creating program: %w", err)
	}
	return nil
}

// GetByID retrieves a program by ID
func (r *ProgramRepository) GetByID(ctx context.Context, id int64) (*models.Program, error) {
	sql, args, err := r.sb.Select("id", "title", "COALESCE(description, '')", "COALESCE(program_year, 0)").
		From("programs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get program query: %w", err)
	}

	var p models.Program
	err = r.db.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.Title, &p.Description, &p.ProgramYear)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, fmt.Errorf("error getting program: %w", err)
	}
	return &p, nil
}
