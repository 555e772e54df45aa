package report

import (
	"context"
	"fmt"
	"time"

	"stockledger/internal/core/apperror"
	"stockledger/internal/domain/catalog/product"
	"stockledger/internal/domain/ledger"
	"stockledger/internal/domain/settings"
)

// Service orchestrates the aggregation pipeline: it assembles a complete
// replacement snapshot from the store and re-runs the pure pipeline on
// every invocation. The pipeline itself carries no subscription
// machinery or incremental update model; each run is independent and
// idempotent given its snapshot.
type Service struct {
	transactions ledger.Repository
	products     product.Repository
	settings     *settings.Service
}

// NewService creates a new report service.
func NewService(transactions ledger.Repository, products product.Repository, settingsSvc *settings.Service) *Service {
	return &Service{
		transactions: transactions,
		products:     products,
		settings:     settingsSvc,
	}
}

// LoadSnapshot fetches the current state of all three collections.
// A transaction referencing a product missing from the product list is
// not an error; the pipeline includes it regardless.
func (s *Service) LoadSnapshot(ctx context.Context) (Snapshot, error) {
	transactions, err := s.transactions.List(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load transactions: %w", err)
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load products: %w", err)
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load settings: %w", err)
	}

	return Snapshot{
		Transactions: transactions,
		Products:     products,
		Settings:     cfg,
	}, nil
}

// Monthly computes the derived state for a target billing month.
func (s *Service) Monthly(ctx context.Context, year int, month int) (DerivedState, error) {
	if month < 1 || month > 12 {
		return DerivedState{}, apperror.NewValidation("month must be between 1 and 12").
			WithDetail("month", month)
	}
	if year < 1 {
		return DerivedState{}, apperror.NewValidation("year is required").
			WithDetail("year", year)
	}

	snap, err := s.LoadSnapshot(ctx)
	if err != nil {
		return DerivedState{}, err
	}

	return Compute(snap, year, time.Month(month)), nil
}

// Matrices computes the full-history flow and stock matrices without a
// billing month (the flow and stock views).
func (s *Service) Matrices(ctx context.Context) (*FlowMatrix, *StockMatrix, error) {
	snap, err := s.LoadSnapshot(ctx)
	if err != nil {
		return nil, nil, err
	}

	flow := BuildFlowMatrix(snap.Transactions, snap.Products)
	stock := ProjectStock(flow)
	return flow, stock, nil
}
