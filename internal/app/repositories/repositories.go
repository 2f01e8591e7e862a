package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/unirecords/internal/db"
)

// statementBuilder is shared by every repository; Postgres wants $n placeholders.
var statementBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository      *StudentRepository
	AdminRepository        *AdminRepository
	ProgramRepository      *ProgramRepository
	UnitRepository         *UnitRepository
	PrerequisiteRepository *PrerequisiteRepository
	RegistrationRepository *RegistrationRepository
	GradeRepository        *GradeRepository
	InvoiceRepository      *InvoiceRepository
	HistoryRepository      *HistoryRepository
}

// NewRepositories initializes all repositories against the pool
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return NewRepositoriesWithDB(pool)
}

// NewRepositoriesWithDB initializes all repositories against any querier,
// a pool or an open transaction.
func NewRepositoriesWithDB(conn db.DBTX) *Repositories {
	return &Repositories{
		StudentRepository:      NewStudentRepository(conn),
		AdminRepository:        NewAdminRepository(conn),
		ProgramRepository:      NewProgramRepository(conn),
		UnitRepository:         NewUnitRepository(conn),
		PrerequisiteRepository: NewPrerequisiteRepository(conn),
		RegistrationRepository: NewRegistrationRepository(conn),
		GradeRepository:        NewGradeRepository(conn),
		InvoiceRepository:      NewInvoiceRepository(conn),
		HistoryRepository:      NewHistoryRepository(conn),
	}
}
