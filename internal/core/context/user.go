// Package context provides request-scoped values extraction.
package context

import (
	"context"
)

// UserContext contains the authenticated worker's identity.
type UserContext struct {
	WorkerID  string
	Email     string
	SessionID string
}

type userContextKey struct{}

// WithUser adds UserContext to context.
func WithUser(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// GetUser returns UserContext from context.
func GetUser(ctx context.Context) *UserContext {
	if v, ok := ctx.Value(userContextKey{}).(*UserContext); ok {
		return v
	}
	return nil
}

// GetWorkerID returns the acting worker's ID from context or empty string.
func GetWorkerID(ctx context.Context) string {
	if u := GetUser(ctx); u != nil {
		return u.WorkerID
	}
	return ""
}
