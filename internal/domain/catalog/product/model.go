// Package product provides the product catalog.
// Products are the selectable items stock movements are recorded against.
package product

import (
	"context"
	"regexp"
	"sort"
	"time"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/id"
)

// codePattern is the structured product code: two 3-digit zero-padded
// segments joined by a hyphen, e.g. "001-042".
var codePattern = regexp.MustCompile(`^\d{3}-\d{3}$`)

// Product represents a catalog entry.
//
// Deleting a product removes it from the selectable catalog but never
// touches its historical transactions; aggregation stays keyed on the
// product ID whether or not it still resolves to a catalog entry.
type Product struct {
	// ID is the primary key (UUIDv7)
	ID id.ID `db:"id" json:"id"`

	// Name is the display name, required
	Name string `db:"name" json:"name"`

	// Code is an optional structured code used purely for sort/display
	// ordering. Products without a code sort after all coded products.
	Code *string `db:"code" json:"code,omitempty"`

	// CreatedAt is the catalog insertion instant
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// NewProduct creates a new Product with generated ID.
func NewProduct(name string, code *string) *Product {
	if code != nil && *code == "" {
		code = nil
	}
	return &Product{
		ID:        id.New(),
		Name:      name,
		Code:      code,
		CreatedAt: time.Now().UTC(),
	}
}

// Validate checks product invariants.
func (p *Product) Validate(ctx context.Context) error {
	if p.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}

	if p.Code != nil && !codePattern.MatchString(*p.Code) {
		return apperror.NewValidation("code must match NNN-NNN").
			WithDetail("field", "code").
			WithDetail("value", *p.Code)
	}

	return nil
}

// HasCode reports whether the product carries a structured code.
func (p *Product) HasCode() bool {
	return p.Code != nil && *p.Code != ""
}

// SortForDisplay orders products for catalog listings: coded products
// first, ascending by code, then uncoded products by name.
func SortForDisplay(items []*Product) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch {
		case a.HasCode() && b.HasCode():
			if *a.Code != *b.Code {
				return *a.Code < *b.Code
			}
			return a.Name < b.Name
		case a.HasCode():
			return true
		case b.HasCode():
			return false
		default:
			return a.Name < b.Name
		}
	})
}
