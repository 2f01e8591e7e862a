package dto

// CreateStudentRequest creates a student account
type CreateStudentRequest struct {
	StudentID    string `json:"student_id" binding:"required" example:"S1001"`
	Password     string `json:"password" binding:"required,min=6"`
	FirstName    string `json:"first_name" binding:"required" example:"Ada"`
	LastName     string `json:"last_name" binding:"required" example:"Lovelace"`
	Email        string `json:"email" binding:"omitempty,email"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	ProgramID    int64  `json:"program_id" binding:"gte=0" example:"1"`
	ProgramTitle string `json:"program_title" example:"Computer Science"`
	ProgramYear  int    `json:"program_year" binding:"gte=0" example:"2025"`
}

// UpsertInvoiceRequest sets a student's fee position
type UpsertInvoiceRequest struct {
	TotalFees  *float64 `json:"total_fees" binding:"required,gte=0" example:"4500"`
	AmountPaid *float64 `json:"amount_paid" binding:"required,gte=0" example:"1500"`
	Holds      string   `json:"holds" example:"None"`
}

// UpsertGradeRequest sets a student's grade for a unit
type UpsertGradeRequest struct {
	Grade    string `json:"grade" binding:"required,oneof=A B C D F" example:"A"`
	Semester string `json:"semester" binding:"required" example:"S1"`
	Year     int    `json:"year" binding:"required,gte=1900" example:"2025"`
}

// CreateProgramRequest creates a degree program
type CreateProgramRequest struct {
	Title       string `json:"title" binding:"required" example:"Computer Science"`
	Description string `json:"description"`
	ProgramYear int    `json:"program_year" binding:"gte=0" example:"2025"`
}

// CreateUnitRequest creates a unit within an existing program
type CreateUnitRequest struct {
	Title           string   `json:"title" binding:"required" example:"Programming 1"`
	UnitCode        string   `json:"unit_code" binding:"required" example:"CS101"`
	Description     string   `json:"description"`
	SemesterOffered string   `json:"semester_offered" binding:"required" example:"S1"`
	YearOffered     int      `json:"year_offered" binding:"gte=0" example:"1"`
	UnitFee         float64  `json:"unit_fee" binding:"gte=0" example:"1200"`
	ProgramID       int64    `json:"program_id" binding:"required,gt=0" example:"1"`
	Prerequisites   []string `json:"prerequisites"`
}
