package models

// Program defines a degree program based on the 'programs' table.
// Title is the join key used by units and students.
type Program struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	ProgramYear int    `json:"program_year" db:"program_year"`
}
