package models

import "time"

// UnitRegistration is a single requested registration within a batch.
type UnitRegistration struct {
	UnitCode    string `json:"unit_code"`
	Semester    string `json:"semester"`
	ProgramYear int    `json:"program_year"`
}

// RegisteredUnit is a committed row of the 'registered_units' table.
type RegisteredUnit struct {
	ID           int64     `json:"id" db:"id"`
	StudentID    string    `json:"student_id" db:"student_id"`
	UnitCode     string    `json:"unit_code" db:"unit_code"`
	Semester     string    `json:"semester" db:"semester"`
	ProgramYear  int       `json:"program_year" db:"program_year"`
	RegisteredAt time.Time `json:"registered_at" db:"registered_at"`
}

// SemesterGroup is the subset of a batch sharing one semester value.
type SemesterGroup struct {
	Semester string
	Units    []UnitRegistration
}

// GroupBySemester partitions requests by semester. Groups are ordered by the
// first appearance of their semester and keep input order internally.
func GroupBySemester(requests []UnitRegistration) []SemesterGroup {
	index := make(map[string]int)
	var groups []SemesterGroup
	for _, req := range requests {
		i, ok := index[req.Semester]
		if !ok {
			i = len(groups)
			index[req.Semester] = i
			groups = append(groups, SemesterGroup{Semester: req.Semester})
		}
		groups[i].Units = append(groups[i].Units, req)
	}
	return groups
}
