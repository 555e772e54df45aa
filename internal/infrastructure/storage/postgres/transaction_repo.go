package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
	"stockledger/internal/domain/ledger"
)

const transactionTable = "transactions"

// TransactionRepo implements ledger.Repository.
type TransactionRepo struct {
	pool *Pool
}

// NewTransactionRepo creates a new transaction repository.
func NewTransactionRepo(pool *Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

var _ ledger.Repository = (*TransactionRepo)(nil)

// transactionRow is the scan target; the civil date round-trips through
// a SQL DATE column.
type transactionRow struct {
	ID          id.ID     `db:"id"`
	Date        time.Time `db:"date"`
	ProductID   id.ID     `db:"product_id"`
	ProductName string    `db:"product_name"`
	Type        string    `db:"type"`
	Quantity    int64     `db:"quantity"`
	CreatedAt   time.Time `db:"created_at"`
	WorkerID    *string   `db:"worker_id"`
}

func (r transactionRow) toEntity() *ledger.Transaction {
	return &ledger.Transaction{
		ID:          r.ID,
		Date:        types.DayOf(r.Date),
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		Type:        ledger.Type(r.Type),
		Quantity:    r.Quantity,
		Timestamp:   r.CreatedAt,
		WorkerID:    r.WorkerID,
	}
}

func (r *TransactionRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Create appends a transaction. The creation timestamp is assigned by
// the database, never by the caller.
func (r *TransactionRepo) Create(ctx context.Context, t *ledger.Transaction) error {
	ctx, end := startSpan(ctx, "transactions.create", transactionTable)
	var err error
	defer func() { end(err) }()

	sql, args, err := r.builder().
		Insert(transactionTable).
		Columns("id", "date", "product_id", "product_name", "type", "quantity", "created_at", "worker_id").
		Values(t.ID, t.Date.Time(), t.ProductID, t.ProductName, string(t.Type), t.Quantity, squirrel.Expr("now()"), t.WorkerID).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if err = r.pool.QueryRow(ctx, sql, args...).Scan(&t.Timestamp); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	return nil
}

// GetByID retrieves a transaction by ID.
func (r *TransactionRepo) GetByID(ctx context.Context, txID id.ID) (*ledger.Transaction, error) {
	ctx, end := startSpan(ctx, "transactions.get", transactionTable)
	var err error
	defer func() { end(err) }()

	sql, args, err := r.builder().
		Select("id", "date", "product_id", "product_name", "type", "quantity", "created_at", "worker_id").
		From(transactionTable).
		Where(squirrel.Eq{"id": txID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var row transactionRow
	if err = pgxscan.Get(ctx, r.pool, &row, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = apperror.NewNotFound("transaction", txID.String())
			return nil, err
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}

	return row.toEntity(), nil
}

// List retrieves the full transaction history.
func (r *TransactionRepo) List(ctx context.Context) ([]*ledger.Transaction, error) {
	ctx, end := startSpan(ctx, "transactions.list", transactionTable)
	var err error
	defer func() { end(err) }()

	sql, args, err := r.builder().
		Select("id", "date", "product_id", "product_name", "type", "quantity", "created_at", "worker_id").
		From(transactionTable).
		OrderBy("date DESC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var rows []transactionRow
	if err = pgxscan.Select(ctx, r.pool, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	items := make([]*ledger.Transaction, len(rows))
	for i, row := range rows {
		items[i] = row.toEntity()
	}
	return items, nil
}

// Delete removes a transaction by ID.
func (r *TransactionRepo) Delete(ctx context.Context, txID id.ID) error {
	ctx, end := startSpan(ctx, "transactions.delete", transactionTable)
	var err error
	defer func() { end(err) }()

	sql, args, err := r.builder().
		Delete(transactionTable).
		Where(squirrel.Eq{"id": txID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		err = apperror.NewNotFound("transaction", txID.String())
		return err
	}

	return nil
}
