package models

// Grade is a student's result for one unit based on the 'grades' table
type Grade struct {
	ID        int64  `json:"id" db:"id"`
	StudentID string `json:"student_id" db:"student_id"`
	UnitID    int64  `json:"unit_id" db:"unit_id"`
	Semester  string `json:"semester" db:"semester"`
	Year      int    `json:"year" db:"year"`
	Grade     string `json:"grade" db:"grade"`
}

// GradeRecord is a grade joined with its unit title
type GradeRecord struct {
	UnitName string `json:"unit_name"`
	Grade    string `json:"grade"`
	Semester string `json:"semester"`
	Year     int    `json:"year"`
}

// UnitGrade is a grade keyed by unit code, used when building audits
type UnitGrade struct {
	UnitCode string
	Title    string
	Grade    string
}
