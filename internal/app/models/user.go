package models

import "time"

// Admin defines an administrator account based on the 'admins' table
type Admin struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Password  string    `json:"-" db:"password"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Credential is the subset of a student or admin row needed to log in
type Credential struct {
	ID           int64
	Identifier   string
	PasswordHash string
	UserType     UserType
}
