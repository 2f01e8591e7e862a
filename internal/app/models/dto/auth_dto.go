package dto

// LoginRequest represents login credentials. Students identify with
// studentId, admins with username.
type LoginRequest struct {
	UserType  string `json:"userType" binding:"required" example:"student"`
	StudentID string `json:"studentId,omitempty" example:"S1001"`
	Username  string `json:"username,omitempty" example:"admin"`
	Password  string `json:"password" binding:"required" example:"secret"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	Token string `json:"token"`
}
