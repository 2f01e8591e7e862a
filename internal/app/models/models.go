package models

// UserType identifies which credential table a principal comes from
type UserType string

const (
	UserTypeStudent UserType = "student"
	UserTypeAdmin   UserType = "admin"
)

// Valid reports whether the user type is one the service can authenticate
func (t UserType) Valid() bool {
	return t == UserTypeStudent || t == UserTypeAdmin
}

// MaxUnitsPerSemester caps how many units a student may hold in one semester
const MaxUnitsPerSemester = 4

// PassingGrades are the grade letters counted as a pass in audits
var PassingGrades = map[string]bool{
	"A": true,
	"B": true,
	"C": true,
	"D": true,
}

// GradeLetters lists every grade letter accepted on write
var GradeLetters = []string{"A", "B", "C", "D", "F"}

// IsPassingGrade reports whether a grade letter is a pass
func IsPassingGrade(grade string) bool {
	return PassingGrades[grade]
}
