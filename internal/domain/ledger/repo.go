package ledger

import (
	"context"

	"stockledger/internal/core/id"
)

// Repository defines the interface for Transaction persistence.
// The store is append-only: no update operation exists.
type Repository interface {
	// Create appends a new transaction. The store assigns the creation
	// timestamp.
	Create(ctx context.Context, t *Transaction) error

	// GetByID retrieves a transaction by ID.
	GetByID(ctx context.Context, id id.ID) (*Transaction, error)

	// List retrieves the full transaction history.
	List(ctx context.Context) ([]*Transaction, error)

	// Delete removes a transaction by ID.
	Delete(ctx context.Context, id id.ID) error
}
