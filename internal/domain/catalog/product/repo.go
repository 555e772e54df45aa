package product

import (
	"context"

	"stockledger/internal/core/id"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	// Create inserts a new product.
	Create(ctx context.Context, p *Product) error

	// GetByID retrieves a product by ID.
	GetByID(ctx context.Context, id id.ID) (*Product, error)

	// List retrieves the full catalog.
	List(ctx context.Context) ([]*Product, error)

	// Delete removes a product from the catalog. Historical transactions
	// referencing it are left untouched.
	Delete(ctx context.Context, id id.ID) error
}
