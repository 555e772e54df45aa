package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/id"
	"stockledger/internal/domain/catalog/product"
)

const productTable = "products"

// ProductRepo implements product.Repository.
type ProductRepo struct {
	pool *Pool
}

// NewProductRepo creates a new product repository.
func NewProductRepo(pool *Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

var _ product.Repository = (*ProductRepo)(nil)

func (r *ProductRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a new product.
func (r *ProductRepo) Create(ctx context.Context, p *product.Product) error {
	ctx, end := startSpan(ctx, "products.create", productTable)
	var err error
	defer func() { end(err) }()

	sql, args, err := r.builder().
		Insert(productTable).
		Columns("id", "name", "code", "created_at").
		Values(p.ID, p.Name, p.Code, p.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err = r.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}

	return nil
}

// GetByID retrieves a product by ID.
func (r *ProductRepo) GetByID(ctx context.Context, productID id.ID) (*product.Product, error) {
	ctx, end := startSpan(ctx, "products.get", productTable)
	var err error
	defer func() { end(err) }()

	sql, args, err := r.builder().
		Select("id", "name", "code", "created_at").
		From(productTable).
		Where(squirrel.Eq{"id": productID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var p product.Product
	if err = pgxscan.Get(ctx, r.pool, &p, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = apperror.NewNotFound("product", productID.String())
			return nil, err
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	return &p, nil
}

// List retrieves the full catalog.
func (r *ProductRepo) List(ctx context.Context) ([]*product.Product, error) {
	ctx, end := startSpan(ctx, "products.list", productTable)
	var err error
	defer func() { end(err) }()

	sql, args, err := r.builder().
		Select("id", "name", "code", "created_at").
		From(productTable).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var items []*product.Product
	if err = pgxscan.Select(ctx, r.pool, &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return items, nil
}

// Delete removes a product from the catalog. Transactions referencing it
// are intentionally left in place (no cascade).
func (r *ProductRepo) Delete(ctx context.Context, productID id.ID) error {
	ctx, end := startSpan(ctx, "products.delete", productTable)
	var err error
	defer func() { end(err) }()

	sql, args, err := r.builder().
		Delete(productTable).
		Where(squirrel.Eq{"id": productID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		err = apperror.NewNotFound("product", productID.String())
		return err
	}

	return nil
}
