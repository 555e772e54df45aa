package settings

import (
	"context"
)

// Repository defines the interface for the settings singleton.
type Repository interface {
	// Get retrieves the settings record. Returns a NotFound app error
	// when the record does not exist yet.
	Get(ctx context.Context) (*Settings, error)

	// Save upserts the settings record (merge semantics: only the fields
	// of Settings are written, the record is created when absent).
	Save(ctx context.Context, s *Settings) error
}
