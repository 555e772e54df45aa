package dto

import (
	"time"

	"stockledger/internal/domain/catalog/product"
)

// CreateProductRequest adds a product to the catalog.
type CreateProductRequest struct {
	Name string  `json:"name" binding:"required"`
	Code *string `json:"code,omitempty"`
}

// ProductResponse is a catalog entry.
type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      *string   `json:"code,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProductListResponse is the display-ordered catalog.
type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	TotalCount int               `json:"totalCount"`
}

// FromProduct maps a product to its response shape.
func FromProduct(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		Code:      p.Code,
		CreatedAt: p.CreatedAt,
	}
}
