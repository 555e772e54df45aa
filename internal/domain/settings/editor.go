package settings

import (
	"sync"

	"stockledger/internal/core/types"
)

// Editor is an explicit two-state value for the unit price: the committed
// settings plus an optional pending edit. Refreshes from the store update
// the committed value only; while an edit is open the pending buffer is
// left alone, so a snapshot arriving mid-edit cannot clobber what the
// user is typing.
type Editor struct {
	mu        sync.Mutex
	committed *Settings
	pending   *types.Money
	editing   bool
}

// Begin opens an edit session seeded with the committed value.
func (e *Editor) Begin() types.Money {
	e.mu.Lock()
	defer e.mu.Unlock()

	seed := DefaultUnitPrice
	if e.committed != nil {
		seed = e.committed.UnitPrice
	}
	e.pending = &seed
	e.editing = true
	return seed
}

// SetPending stages a new price inside an open edit session.
func (e *Editor) SetPending(price types.Money) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.editing {
		return
	}
	e.pending = &price
}

// Pending returns the staged price and whether an edit is open.
func (e *Editor) Pending() (types.Money, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.editing || e.pending == nil {
		return types.ZeroMoney(), false
	}
	return *e.pending, true
}

// Discard abandons the open edit session.
func (e *Editor) Discard() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.pending = nil
	e.editing = false
}

// Refresh replaces the committed value from a store snapshot. The pending
// buffer survives when an edit is open.
func (e *Editor) Refresh(s *Settings) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.committed = s
	if !e.editing {
		e.pending = nil
	}
}

// CommitExternal records a successful save: the pending buffer becomes
// the committed value and the edit session closes.
func (e *Editor) CommitExternal(s *Settings) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.committed = s
	e.pending = nil
	e.editing = false
}

// Committed returns the last known committed settings.
func (e *Editor) Committed() *Settings {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.committed == nil {
		return Default()
	}
	return e.committed
}
