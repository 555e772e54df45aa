// Package auth provides worker authentication: accounts, password
// verification and JWT session tokens. The aggregation engine only ever
// sees the resulting opaque worker ID on new transactions.
package auth

import (
	"context"
	"strings"
	"time"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/id"
)

// Worker is an account that can record stock movements.
type Worker struct {
	ID           id.ID     `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// NewWorker creates a worker account with generated ID.
func NewWorker(email, passwordHash string) *Worker {
	return &Worker{
		ID:           id.New(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}

// Validate checks account invariants.
func (w *Worker) Validate(ctx context.Context) error {
	if w.Email == "" || !strings.Contains(w.Email, "@") {
		return apperror.NewValidation("valid email is required").
			WithDetail("field", "email")
	}
	if w.PasswordHash == "" {
		return apperror.NewValidation("password is required").
			WithDetail("field", "password")
	}
	return nil
}

// Repository defines the interface for worker persistence.
type Repository interface {
	Create(ctx context.Context, w *Worker) error
	GetByEmail(ctx context.Context, email string) (*Worker, error)
	GetByID(ctx context.Context, id id.ID) (*Worker, error)
}
