package accountsdk

import "time"

// ============================================================================
// Common Types
// ============================================================================

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid Login Details"`
}

// MessageResponse acknowledges an operation with a human-readable message.
type MessageResponse struct {
	Message string `json:"message" example:"Logout Successful"`
}

// ============================================================================
// Registration & Verification Types
// ============================================================================

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Email           string `json:"email" example:"jane@example.com"`
	Password        string `json:"password" example:"correct-horse"`
	ConfirmPassword string `json:"confirm_password" example:"correct-horse"`
	FirstName       string `json:"first_name" example:"Jane"`
	LastName        string `json:"last_name" example:"Doe"`
}

// RegisterResponse is returned on 201. The verification token is only ever
// delivered by email.
type RegisterResponse struct {
	Message string `json:"message"`
	Email   string `json:"email" example:"jane@example.com"`
}

// EmailRequest carries a single email, used by resend and reset request.
type EmailRequest struct {
	Email string `json:"email" example:"jane@example.com"`
}

// ============================================================================
// Session Types
// ============================================================================

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"correct-horse"`
}

// TokenPair holds a short-lived JWT access token and an opaque refresh token.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenResponse is returned by login and refresh.
type TokenResponse struct {
	Message string    `json:"message" example:"Login Successful"`
	Token   TokenPair `json:"token"`
}

// RefreshRequest carries a refresh token. Logout accepts it optionally.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// ProfileResponse is returned by GET /me.
type ProfileResponse struct {
	ID         string    `json:"id" example:"01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV"`
	Email      string    `json:"email" example:"jane@example.com"`
	FirstName  string    `json:"first_name" example:"Jane"`
	LastName   string    `json:"last_name" example:"Doe"`
	IsVerified bool      `json:"is_verified"`
	DateJoined time.Time `json:"date_joined"`
}

// ============================================================================
// Password Reset Types
// ============================================================================

// ResetConfirmRequest is the body of POST /reset/confirm.
type ResetConfirmRequest struct {
	Email       string `json:"email" example:"jane@example.com"`
	Code        string `json:"code" example:"042137"`
	NewPassword string `json:"new_password" example:"battery-staple"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz. Checks is only set by
// /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of each dependency.
type HealthChecks struct {
	Database string `json:"database"`
	Cache    string `json:"cache"`
}
