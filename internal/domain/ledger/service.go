package ledger

import (
	"context"
	"fmt"

	"stockledger/internal/core/apperror"
	appctx "stockledger/internal/core/context"
	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
	"stockledger/internal/domain/catalog/product"
	"stockledger/pkg/logger"
)

// Service provides business operations for the movement ledger.
type Service struct {
	repo     Repository
	products product.Repository
}

// NewService creates a new ledger service.
func NewService(repo Repository, products product.Repository) *Service {
	return &Service{repo: repo, products: products}
}

// AppendInput carries the caller-supplied fields of a new transaction.
type AppendInput struct {
	Date      types.Day
	ProductID id.ID
	Type      Type
	Quantity  int64
}

// Append records a new stock movement. The product's current name is
// snapshotted onto the transaction; the acting worker is taken from the
// request context when present.
func (s *Service) Append(ctx context.Context, in AppendInput) (*Transaction, error) {
	t := &Transaction{
		ID:        id.New(),
		Date:      in.Date,
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
	}

	if workerID := appctx.GetWorkerID(ctx); workerID != "" {
		t.WorkerID = &workerID
	}

	if err := t.Validate(ctx); err != nil {
		return nil, err
	}

	// Snapshot the display name. A movement against an unknown product is
	// rejected at this boundary; historical orphans only arise from later
	// catalog deletions.
	p, err := s.products.GetByID(ctx, in.ProductID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewValidation("product does not exist").
				WithDetail("productId", in.ProductID.String())
		}
		return nil, fmt.Errorf("resolve product: %w", err)
	}
	t.ProductName = p.Name

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("append transaction: %w", err)
	}

	logger.Info(ctx, "transaction recorded",
		"transaction_id", t.ID,
		"date", t.Date,
		"product_id", t.ProductID,
		"type", t.Type,
		"quantity", t.Quantity,
	)

	return t, nil
}

// List returns the full history in display order.
func (s *Service) List(ctx context.Context) ([]*Transaction, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	SortForDisplay(items)
	return items, nil
}

// Delete removes a transaction from the ledger.
func (s *Service) Delete(ctx context.Context, txID id.ID) error {
	if _, err := s.repo.GetByID(ctx, txID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, txID); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}

	logger.Info(ctx, "transaction deleted", "transaction_id", txID)
	return nil
}
