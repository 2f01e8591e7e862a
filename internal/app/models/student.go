package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID           int64     `json:"id" db:"id"`
	StudentID    string    `json:"student_id" db:"student_id"`
	Password     string    `json:"-" db:"password"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Email        string    `json:"email,omitempty" db:"email"`
	Address      string    `json:"address,omitempty" db:"address"`
	Phone        string    `json:"phone,omitempty" db:"phone"`
	ProgramTitle string    `json:"program_title" db:"program_title"`
	ProgramYear  int       `json:"program_year" db:"program_year"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// FullName joins first and last name
func (s *Student) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}
