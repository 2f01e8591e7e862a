package dto

import "time"

// StudentDetailsResponse is the public summary of a student
type StudentDetailsResponse struct {
	StudentID    string `json:"student_id" example:"S1001"`
	FirstName    string `json:"first_name" example:"Ada"`
	LastName     string `json:"last_name" example:"Lovelace"`
	ProgramTitle string `json:"program_title" example:"Computer Science"`
	ProgramYear  int    `json:"program_year" example:"2025"`
}

// InvoiceResponse represents a student's fee position
type InvoiceResponse struct {
	StudentID  string  `json:"student_id"`
	TotalFees  float64 `json:"total_fees"`
	AmountPaid float64 `json:"amount_paid"`
	Holds      string  `json:"holds"`
}

// GradeResponse is one row of the grades listing
type GradeResponse struct {
	UnitName string `json:"unit_name" example:"Programming 1"`
	Grade    string `json:"grade" example:"A"`
	Semester string `json:"semester" example:"S1"`
	Year     int    `json:"year" example:"2025"`
}

// AuditEntryResponse is one row of the pass/fail audit
type AuditEntryResponse struct {
	Title  string `json:"title"`
	Grade  string `json:"grade"`
	Status string `json:"status" example:"Passed"`
}

// HistoryResponse is one row of the student's activity history
type HistoryResponse struct {
	Title     string    `json:"title"`
	Action    string    `json:"action" example:"registered"`
	Timestamp time.Time `json:"timestamp"`
}

// AvailableUnitsQuery holds the required filters of the available-units lookup
type AvailableUnitsQuery struct {
	ProgramTitle string `form:"programTitle" binding:"required"`
	YearOffered  *int   `form:"yearOffered" binding:"required"`
	Semester     string `form:"semester" binding:"required"`
}

// AvailableUnitResponse is a unit that can be picked for registration
type AvailableUnitResponse struct {
	UnitCode string `json:"unit_code" example:"CS101"`
	Title    string `json:"title" example:"Programming 1"`
}
