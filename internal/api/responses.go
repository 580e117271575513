// Package api defines the shared request and response DTOs for the HTTP layer.
package api

// ErrorResponse is the standard error body returned by all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a simple confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a signed JWT back to the client after login.
type TokenResponse struct {
	Token string `json:"token"`
}

// SignupRequest is the JSON body for POST /signup.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the JSON body for POST /login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
