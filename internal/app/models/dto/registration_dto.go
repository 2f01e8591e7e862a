package dto

// RegisterUnitItem is one unit in a registration batch
type RegisterUnitItem struct {
	UnitCode    string `json:"unit_code" binding:"required" example:"CS101"`
	Semester    string `json:"semester" binding:"required" example:"2025-S1"`
	ProgramYear int    `json:"program_year" binding:"gte=0" example:"1"`
}

// RegisterUnitsRequest registers a batch of units for one student
type RegisterUnitsRequest struct {
	StudentID string             `json:"student_id" binding:"required" example:"S1001"`
	Units     []RegisterUnitItem `json:"units" binding:"dive"`
}
