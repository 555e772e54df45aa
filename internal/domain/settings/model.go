// Package settings provides the global settings singleton.
// The only setting today is the storage-fee unit price.
package settings

import (
	"context"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/types"
)

// DefaultUnitPrice is applied when no settings record exists yet.
var DefaultUnitPrice = types.MoneyFromInt(400)

// Settings is the singleton configuration record.
type Settings struct {
	// UnitPrice is the storage fee per unit per month, a single global
	// scalar (no per-product pricing).
	UnitPrice types.Money `db:"unit_price" json:"unitPrice"`
}

// Default returns settings populated with defaults.
func Default() *Settings {
	return &Settings{UnitPrice: DefaultUnitPrice}
}

// Validate checks settings invariants.
func (s *Settings) Validate(ctx context.Context) error {
	if s.UnitPrice.IsNegative() {
		return apperror.NewValidation("unitPrice cannot be negative").
			WithDetail("field", "unitPrice").
			WithDetail("value", s.UnitPrice.String())
	}
	return nil
}
