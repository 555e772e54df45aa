// Package id provides entity identifiers for the ledger, catalog and
// worker records. Identifiers are UUIDv7: the embedded timestamp keeps
// journal entries insertion-ordered under a plain primary-key index,
// which matters for a table that only ever appends.
package id

import (
	"github.com/google/uuid"
)

// ID identifies any stored entity.
type ID = uuid.UUID

// New generates a time-ordered identifier.
func New() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// The only V7 failure mode is a broken entropy source; a random
		// V4 still satisfies every caller, it just loses time ordering.
		return uuid.New()
	}
	return id
}

// Parse converts a string to an ID with validation.
func Parse(s string) (ID, error) {
	return uuid.Parse(s)
}

// MustParse converts a string to an ID, panics on error.
// Use only for constants and tests.
func MustParse(s string) ID {
	return uuid.MustParse(s)
}

// Nil returns the zero identifier.
func Nil() ID {
	return uuid.Nil
}

// IsNil reports whether the identifier is the zero value.
func IsNil(id ID) bool {
	return id == uuid.Nil
}
