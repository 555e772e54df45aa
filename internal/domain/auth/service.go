package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"stockledger/internal/core/apperror"
	"stockledger/pkg/logger"
)

// Service provides authentication operations.
type Service struct {
	repo Repository
	jwt  *JWTService
}

// NewService creates a new auth service.
func NewService(repo Repository, jwt *JWTService) *Service {
	return &Service{repo: repo, jwt: jwt}
}

// Session is a successful authentication result.
type Session struct {
	Worker    *Worker
	Token     string
	ExpiresAt time.Time
}

// Register creates a worker account and signs it in.
func (s *Service) Register(ctx context.Context, email, password string) (*Session, error) {
	if len(password) < 6 {
		return nil, apperror.NewValidation("password must be at least 6 characters").
			WithDetail("field", "password")
	}

	if existing, err := s.repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, apperror.NewDuplicate("worker", "email", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	w := NewWorker(email, string(hash))
	if err := w.Validate(ctx); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, w); err != nil {
		return nil, fmt.Errorf("create worker: %w", err)
	}

	logger.Info(ctx, "worker registered", "worker_id", w.ID, "email", w.Email)
	return s.issueSession(w)
}

// Login verifies credentials and issues a session token.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	w, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorized("invalid email or password")
		}
		return nil, fmt.Errorf("get worker: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(w.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.NewUnauthorized("invalid email or password")
	}

	logger.Info(ctx, "worker logged in", "worker_id", w.ID)
	return s.issueSession(w)
}

func (s *Service) issueSession(w *Worker) (*Session, error) {
	token, expiresAt, err := s.jwt.GenerateAccessToken(w.ID.String(), w.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &Session{Worker: w, Token: token, ExpiresAt: expiresAt}, nil
}
