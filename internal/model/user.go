package model

import "time"

// RegistrationRole is the role a user picked at registration.
// It is distinct from per-course membership: a Teacher-registered user
// may still be enrolled as a student of someone else's course.
type RegistrationRole string

const (
	RoleStudent RegistrationRole = "S"
	RoleTeacher RegistrationRole = "T"
)

// User represents a registered account.
type User struct {
	ID               int              `json:"id"`
	Username         string           `json:"username"`
	FirstName        string           `json:"first_name"`
	LastName         string           `json:"last_name"`
	Email            string           `json:"email"`
	RegistrationRole RegistrationRole `json:"registration_role"`
	PasswordHash     string           `json:"-"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Username         string           `json:"username" binding:"required,min=5,max=15"`
	Password         string           `json:"password" binding:"required,min=5,max=25"`
	Email            string           `json:"email" binding:"required,email,max=50"`
	FirstName        string           `json:"first_name" binding:"required,max=250"`
	LastName         string           `json:"last_name" binding:"required,max=250"`
	RegistrationRole RegistrationRole `json:"registration_role" binding:"omitempty,oneof=S T"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned after successful login.
type LoginResponse struct {
	Token    string `json:"token"`
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
}
