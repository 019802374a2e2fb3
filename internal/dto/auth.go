package dto

import "github.com/GargManasvini/mini-healthcare-platform/internal/models"

// SignupRequest represents the request payload for user registration
type SignupRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents the request payload for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response is the common envelope for API responses
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SignupResponse represents the response after successful registration
type SignupResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

// LoginResponse represents the response after successful authentication.
// The token is returned in the body as well as the cookie so that
// non-browser clients can use the bearer header.
type LoginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
}
