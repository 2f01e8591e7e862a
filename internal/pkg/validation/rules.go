package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Student identifier: letters, digits, dash and underscore
	StudentIDPattern = `^[A-Za-z0-9_-]{1,32}$`

	// Unit code, e.g. CS101 or MATH-201
	UnitCodePattern = `^[A-Za-z0-9_-]{1,32}$`

	// Password min length
	PasswordMinLength = 6

	// Semester label max length, matches the column width
	SemesterMaxLength = 32
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	StudentID *regexp.Regexp
	UnitCode  *regexp.Regexp
}{
	StudentID: regexp.MustCompile(StudentIDPattern),
	UnitCode:  regexp.MustCompile(UnitCodePattern),
}

// StringValidation checks a single string value
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation. Surrounding whitespace does not count
// towards a required value.
func (v *StringValidation) Validate() bool {
	value := strings.TrimSpace(v.Value)
	if value == "" {
		return !v.Required
	}

	if v.MinLen > 0 && len(value) < v.MinLen {
		return false
	}
	if v.MaxLen > 0 && len(value) > v.MaxLen {
		return false
	}
	if v.Pattern != nil && !v.Pattern.MatchString(value) {
		return false
	}
	return true
}

// NumericValidation checks a single integer value
type NumericValidation struct {
	Value  int
	Min    int
	Max    int
	HasMin bool
	HasMax bool
}

// NewNumericValidation creates a new numeric validation
func NewNumericValidation(value int) *NumericValidation {
	return &NumericValidation{Value: value}
}

// WithMin sets minimum value
func (v *NumericValidation) WithMin(min int) *NumericValidation {
	v.Min = min
	v.HasMin = true
	return v
}

// WithMax sets maximum value
func (v *NumericValidation) WithMax(max int) *NumericValidation {
	v.Max = max
	v.HasMax = true
	return v
}

// Validate performs validation
func (v *NumericValidation) Validate() bool {
	if v.HasMin && v.Value < v.Min {
		return false
	}
	if v.HasMax && v.Value > v.Max {
		return false
	}
	return true
}

// IsStudentID reports whether s is a well formed student identifier
func IsStudentID(s string) bool {
	return NewStringValidation(s).WithPattern(CompiledPatterns.StudentID).Validate()
}

// IsUnitCode reports whether s is a well formed unit code
func IsUnitCode(s string) bool {
	return NewStringValidation(s).WithPattern(CompiledPatterns.UnitCode).Validate()
}

// IsSemester reports whether s is a usable semester label
func IsSemester(s string) bool {
	return NewStringValidation(s).WithMaxLength(SemesterMaxLength).Validate()
}

// NormalizeGrade upper-cases a grade letter and reports whether it is one of
// the accepted letters.
func NormalizeGrade(grade string, accepted []string) (string, bool) {
	g := strings.ToUpper(strings.TrimSpace(grade))
	for _, a := range accepted {
		if g == a {
			return g, true
		}
	}
	return g, false
}
