package dto

import (
	"time"

	"stockledger/internal/domain/auth"
)

// RegisterRequest creates a worker account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest authenticates a worker.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse carries a signed access token.
type SessionResponse struct {
	WorkerID  string    `json:"workerId"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// FromSession maps an auth session to its response shape.
func FromSession(s *auth.Session) SessionResponse {
	return SessionResponse{
		WorkerID:  s.Worker.ID.String(),
		Email:     s.Worker.Email,
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
	}
}
