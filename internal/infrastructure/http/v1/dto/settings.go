package dto

import (
	"github.com/shopspring/decimal"

	"stockledger/internal/domain/settings"
)

// UpdateSettingsRequest changes the global storage unit price.
type UpdateSettingsRequest struct {
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"required"`
}

// SettingsResponse is the current shared configuration.
type SettingsResponse struct {
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// EditStateResponse is the state of the staged price edit.
type EditStateResponse struct {
	Editing   bool             `json:"editing"`
	UnitPrice *decimal.Decimal `json:"unitPrice,omitempty"`
}

// FromSettings maps settings to the response shape.
func FromSettings(s *settings.Settings) SettingsResponse {
	return SettingsResponse{
		UnitPrice: s.UnitPrice,
	}
}
