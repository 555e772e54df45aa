package settings

import (
	"context"
	"fmt"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/types"
	"stockledger/pkg/logger"
)

// Service provides settings operations. It owns the edit buffer: an
// in-progress price edit is never overwritten by a concurrent refresh of
// the committed value.
type Service struct {
	repo   Repository
	editor Editor
}

// NewService creates a new settings service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the committed settings, creating the record with defaults
// on first read.
func (s *Service) Get(ctx context.Context) (*Settings, error) {
	current, err := s.repo.Get(ctx)
	if err == nil {
		s.editor.Refresh(current)
		return current, nil
	}

	if !apperror.IsNotFound(err) {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	// Auto-create with defaults on first read.
	current = Default()
	if err := s.repo.Save(ctx, current); err != nil {
		return nil, fmt.Errorf("create default settings: %w", err)
	}

	logger.Info(ctx, "settings created with defaults",
		"unit_price", current.UnitPrice,
	)
	s.editor.Refresh(current)
	return current, nil
}

// Update validates and persists a new unit price, replacing the
// committed value.
func (s *Service) Update(ctx context.Context, unitPrice types.Money) (*Settings, error) {
	next := &Settings{UnitPrice: unitPrice}
	if err := next.Validate(ctx); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}

	s.editor.CommitExternal(next)
	logger.Info(ctx, "unit price updated", "unit_price", unitPrice)
	return next, nil
}

// BeginEdit opens a price edit session seeded with the stored value,
// creating the settings record first when none exists.
func (s *Service) BeginEdit(ctx context.Context) (types.Money, error) {
	if _, err := s.Get(ctx); err != nil {
		return types.ZeroMoney(), err
	}
	return s.editor.Begin(), nil
}

// StagePrice stages a new price inside the open edit session without
// persisting it. Returns the staged value.
func (s *Service) StagePrice(ctx context.Context, unitPrice types.Money) (types.Money, error) {
	if _, open := s.editor.Pending(); !open {
		return types.ZeroMoney(), apperror.NewConflict("no price edit in progress")
	}

	next := &Settings{UnitPrice: unitPrice}
	if err := next.Validate(ctx); err != nil {
		return types.ZeroMoney(), err
	}

	s.editor.SetPending(unitPrice)
	return unitPrice, nil
}

// PendingPrice returns the staged price and whether an edit is open.
func (s *Service) PendingPrice() (types.Money, bool) {
	return s.editor.Pending()
}

// DiscardEdit abandons the open edit session.
func (s *Service) DiscardEdit() {
	s.editor.Discard()
}

// CommitEdit persists the staged price and closes the session.
func (s *Service) CommitEdit(ctx context.Context) (*Settings, error) {
	pending, open := s.editor.Pending()
	if !open {
		return nil, apperror.NewConflict("no price edit in progress")
	}
	return s.Update(ctx, pending)
}

// Editor exposes the pending-edit buffer, mainly for clients that stage
// a price before saving it.
func (s *Service) Editor() *Editor {
	return &s.editor
}
