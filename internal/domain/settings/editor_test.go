package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockledger/internal/core/types"
)

func TestEditor_RefreshDoesNotClobberOpenEdit(t *testing.T) {
	e := &Editor{}
	e.Refresh(&Settings{UnitPrice: types.MoneyFromInt(400)})

	seed := e.Begin()
	assert.True(t, seed.Equal(types.MoneyFromInt(400)))

	e.SetPending(types.MoneyFromInt(550))

	// A store snapshot lands while the edit is open.
	e.Refresh(&Settings{UnitPrice: types.MoneyFromInt(425)})

	pending, open := e.Pending()
	require.True(t, open, "edit session should survive a refresh")
	assert.True(t, pending.Equal(types.MoneyFromInt(550)), "pending edit was clobbered")

	// The committed value still tracks the store.
	assert.True(t, e.Committed().UnitPrice.Equal(types.MoneyFromInt(425)))
}

func TestEditor_RefreshClearsStalePendingWhenClosed(t *testing.T) {
	e := &Editor{}

	e.Begin()
	e.SetPending(types.MoneyFromInt(999))
	e.Discard()

	e.Refresh(&Settings{UnitPrice: types.MoneyFromInt(400)})

	_, open := e.Pending()
	assert.False(t, open)
}

func TestEditor_CommitClosesSession(t *testing.T) {
	e := &Editor{}

	e.Begin()
	e.SetPending(types.MoneyFromInt(500))
	e.CommitExternal(&Settings{UnitPrice: types.MoneyFromInt(500)})

	_, open := e.Pending()
	assert.False(t, open)
	assert.True(t, e.Committed().UnitPrice.Equal(types.MoneyFromInt(500)))
}

func TestEditor_SetPendingIgnoredWithoutSession(t *testing.T) {
	e := &Editor{}

	e.SetPending(types.MoneyFromInt(123))

	_, open := e.Pending()
	assert.False(t, open)
}

func TestEditor_BeginSeedsDefaultWithoutCommitted(t *testing.T) {
	e := &Editor{}

	seed := e.Begin()
	assert.True(t, seed.Equal(DefaultUnitPrice))
}
