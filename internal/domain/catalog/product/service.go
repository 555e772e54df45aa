package product

import (
	"context"
	"fmt"
	"strings"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/id"
	"stockledger/pkg/logger"
)

// Service provides business logic for the product catalog.
type Service struct {
	repo Repository
}

// NewService creates a new product catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create adds a new product to the catalog.
func (s *Service) Create(ctx context.Context, name string, code *string) (*Product, error) {
	p := NewProduct(strings.TrimSpace(name), code)
	if err := p.Validate(ctx); err != nil {
		return nil, err
	}

	if err := s.checkNameUnique(ctx, p.Name); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	logger.Info(ctx, "product created", "product_id", p.ID, "name", p.Name)
	return p, nil
}

// List returns the catalog in display order.
func (s *Service) List(ctx context.Context) ([]*Product, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	SortForDisplay(items)
	return items, nil
}

// GetByID retrieves a single product.
func (s *Service) GetByID(ctx context.Context, productID id.ID) (*Product, error) {
	return s.repo.GetByID(ctx, productID)
}

// Delete removes a product from the selectable catalog.
// Historical transactions survive and keep showing the product under its
// denormalized name snapshot.
func (s *Service) Delete(ctx context.Context, productID id.ID) error {
	if _, err := s.repo.GetByID(ctx, productID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, productID); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	logger.Info(ctx, "product deleted", "product_id", productID)
	return nil
}

func (s *Service) checkNameUnique(ctx context.Context, name string) error {
	items, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}
	for _, existing := range items {
		if existing.Name == name {
			return apperror.NewDuplicate("product", "name", name)
		}
	}
	return nil
}
