package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/id"
	"stockledger/internal/domain/auth"
)

const workerTable = "workers"

// WorkerRepo implements auth.Repository.
type WorkerRepo struct {
	pool *Pool
}

// NewWorkerRepo creates a new worker repository.
func NewWorkerRepo(pool *Pool) *WorkerRepo {
	return &WorkerRepo{pool: pool}
}

var _ auth.Repository = (*WorkerRepo)(nil)

func (r *WorkerRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a new worker account.
func (r *WorkerRepo) Create(ctx context.Context, w *auth.Worker) error {
	ctx, end := startSpan(ctx, "workers.create", workerTable)
	var err error
	defer func() { end(err) }()

	sql, args, err := r.builder().
		Insert(workerTable).
		Columns("id", "email", "password_hash", "created_at").
		Values(w.ID, w.Email, w.PasswordHash, w.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err = r.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert worker: %w", err)
	}

	return nil
}

// GetByEmail retrieves a worker by email (case-insensitive).
func (r *WorkerRepo) GetByEmail(ctx context.Context, email string) (*auth.Worker, error) {
	ctx, end := startSpan(ctx, "workers.get_by_email", workerTable)
	var err error
	defer func() { end(err) }()

	sql, args, err := r.builder().
		Select("id", "email", "password_hash", "created_at").
		From(workerTable).
		Where(squirrel.Eq{"email": strings.ToLower(strings.TrimSpace(email))}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var w auth.Worker
	if err = pgxscan.Get(ctx, r.pool, &w, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = apperror.NewNotFound("worker", email)
			return nil, err
		}
		return nil, fmt.Errorf("get worker: %w", err)
	}

	return &w, nil
}

// GetByID retrieves a worker by ID.
func (r *WorkerRepo) GetByID(ctx context.Context, workerID id.ID) (*auth.Worker, error) {
	ctx, end := startSpan(ctx, "workers.get", workerTable)
	var err error
	defer func() { end(err) }()

	sql, args, err := r.builder().
		Select("id", "email", "password_hash", "created_at").
		From(workerTable).
		Where(squirrel.Eq{"id": workerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var w auth.Worker
	if err = pgxscan.Get(ctx, r.pool, &w, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = apperror.NewNotFound("worker", workerID.String())
			return nil, err
		}
		return nil, fmt.Errorf("get worker: %w", err)
	}

	return &w, nil
}
