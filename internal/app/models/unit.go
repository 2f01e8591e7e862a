package models

// Unit represents a unit of study offered by a program.
type Unit struct {
	ID              int64   `json:"id" db:"id"`
	UnitCode        string  `json:"unit_code" db:"unit_code"`
	Title           string  `json:"title" db:"title"`
	Description     string  `json:"description,omitempty" db:"description"`
	YearOffered     int     `json:"year_offered" db:"year_offered"`
	SemesterOffered string  `json:"semester_offered" db:"semester_offered"`
	UnitFee         float64 `json:"unit_fee" db:"unit_fee"`
	ProgramTitle    string  `json:"program_title" db:"program_title"`
}

// Prerequisite states that UnitCode requires PrerequisiteCode.
type Prerequisite struct {
	UnitCode         string `json:"unit_code" db:"unit_code"`
	PrerequisiteCode string `json:"prerequisite_code" db:"prerequisite_code"`
}
