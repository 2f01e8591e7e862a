package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/db"
)

// IPrerequisiteRepository is the prerequisite surface used by the services
type IPrerequisiteRepository interface {
	WithTx(tx pgx.Tx) IPrerequisiteRepository
	Create(ctx context.Context, prereq models.Prerequisite) error
	PrerequisiteCodes(ctx context.Context) (map[string]bool, error)
	ListForUnits(ctx context.Context, unitCodes []string) (map[string][]string, error)
}

// PrerequisiteRepository handles database operations for prerequisites
type PrerequisiteRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewPrerequisiteRepository creates a new prerequisite repository
func NewPrerequisiteRepository(conn db.DBTX) *PrerequisiteRepository {
	return &PrerequisiteRepository{
		db: conn,
		sb: statementBuilder,
	}
}

// WithTx returns a copy bound to the transaction
func (r *PrerequisiteRepository) WithTx(tx pgx.Tx) IPrerequisiteRepository {
	return &PrerequisiteRepository{db: tx, sb: r.sb}
}

// Create records that UnitCode requires PrerequisiteCode
func (r *PrerequisiteRepository) Create(ctx context.Context, prereq models.Prerequisite) error {
	sql, args, err := r.sb.Insert("prerequisites").
		Columns("unit_code", "prerequisite_code").
		Values(prereq.UnitCode, prereq.PrerequisiteCode).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create prerequisite query: %w", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error creating prerequisite: %w", err)
	}
	return nil
}

// PrerequisiteCodes returns every unit code some other unit depends on
func (r *PrerequisiteRepository) PrerequisiteCodes(ctx context.Context) (map[string]bool, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT prerequisite_code FROM prerequisites`)
	if err != nil {
		return nil, fmt.Errorf("error querying prerequisite codes: %w", err)
	}
	defer rows.Close()

	codes := make(map[string]bool)
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("error scanning prerequisite code: %w", err)
		}
		codes[code] = true
	}
	return codes, rows.Err()
}

// ListForUnits maps each of the given unit codes to the codes it requires
func (r *PrerequisiteRepository) ListForUnits(ctx context.Context, unitCodes []string) (map[string][]string, error) {
	result := make(map[string][]string)
	if len(unitCodes) == 0 {
		return result, nil
	}

	sql, args, err := r.sb.Select("unit_code", "prerequisite_code").
		From("prerequisites").
		Where(squirrel.Eq{"unit_code": unitCodes}).
		OrderBy("unit_code", "prerequisite_code").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build prerequisite query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying prerequisites: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Prerequisite
		if err := rows.Scan(&p.UnitCode, &p.PrerequisiteCode); err != nil {
			return nil, fmt.Errorf("error scanning prerequisite row: %w", err)
		}
		result[p.UnitCode] = append(result[p.UnitCode], p.PrerequisiteCode)
	}
	return result, rows.Err()
}
