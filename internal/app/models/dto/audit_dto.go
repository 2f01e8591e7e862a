package dto

// AuditStudent is the student header of a full audit
type AuditStudent struct {
	StudentID    string `json:"studentId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	ProgramTitle string `json:"programTitle"`
	ProgramYear  int    `json:"programYear"`
}

// AuditUnit is one program unit annotated for a student
type AuditUnit struct {
	UnitCode        string   `json:"unitCode"`
	Title           string   `json:"title"`
	YearOffered     int      `json:"yearOffered"`
	SemesterOffered string   `json:"semesterOffered"`
	Prerequisites   []string `json:"prerequisites"`
	IsPrerequisite  bool     `json:"isPrerequisite"`
	IsRegistered    bool     `json:"isRegistered"`
	Grade           *string  `json:"grade"`
	IsCompleted     bool     `json:"isCompleted"`
}

// FullAuditResponse is the program audit of a student
type FullAuditResponse struct {
	Student AuditStudent `json:"student"`
	Units   []AuditUnit  `json:"units"`
}
