// Package ledger provides the append-only stock movement ledger.
// A Transaction is an immutable event once created: it can be deleted,
// never edited.
package ledger

import (
	"context"
	"sort"
	"time"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
)

// Type marks the direction of a stock movement.
type Type string

const (
	TypeIn  Type = "in"  // stock increase
	TypeOut Type = "out" // stock decrease
)

// Transaction is a single dated stock movement.
type Transaction struct {
	// ID is the primary key (UUIDv7)
	ID id.ID `db:"id" json:"id"`

	// Date is the business day the movement is recorded against.
	// Aggregation keys exclusively on Date, never on Timestamp.
	Date types.Day `db:"date" json:"date"`

	// ProductID references a product; the product may have been deleted
	// since (history survives deletion).
	ProductID id.ID `db:"product_id" json:"productId"`

	// ProductName is a point-in-time snapshot of the product's name at
	// creation. It is never dereferenced for aggregation and does not
	// update when the product is renamed.
	ProductName string `db:"product_name" json:"productName"`

	// Type is the movement direction.
	Type Type `db:"type" json:"type"`

	// Quantity is always positive; the sign is carried by Type.
	Quantity int64 `db:"quantity" json:"quantity"`

	// Timestamp is the server-assigned creation instant, used only as a
	// tie-breaker for display ordering.
	Timestamp time.Time `db:"created_at" json:"timestamp"`

	// WorkerID is the acting user, when known.
	WorkerID *string `db:"worker_id" json:"workerId,omitempty"`
}

// SignedQuantity returns the net effect on stock: +Quantity for "in",
// -Quantity for "out".
func (t *Transaction) SignedQuantity() int64 {
	if t.Type == TypeOut {
		return -t.Quantity
	}
	return t.Quantity
}

// Validate checks transaction invariants. Malformed records are rejected
// here, at the write boundary; the aggregation pipeline assumes
// well-formed input.
func (t *Transaction) Validate(ctx context.Context) error {
	if t.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}

	if id.IsNil(t.ProductID) {
		return apperror.NewValidation("productId is required").
			WithDetail("field", "productId")
	}

	if t.Type != TypeIn && t.Type != TypeOut {
		return apperror.NewValidation("type must be 'in' or 'out'").
			WithDetail("field", "type").
			WithDetail("value", string(t.Type))
	}

	if t.Quantity <= 0 {
		return apperror.NewValidation("quantity must be positive").
			WithDetail("field", "quantity").
			WithDetail("value", t.Quantity)
	}

	return nil
}

// SortForDisplay orders transactions the way the journal renders them:
// date descending, creation timestamp descending as tie-breaker.
func SortForDisplay(items []*Transaction) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if c := a.Date.Compare(b.Date); c != 0 {
			return c > 0
		}
		return a.Timestamp.After(b.Timestamp)
	})
}
