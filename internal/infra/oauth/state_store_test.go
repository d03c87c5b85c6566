package oauth

import (
	"testing"
	"time"

	"finsight/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateStore_ConsumeReturnsIssuedBinding(t *testing.T) {
	store := NewStateStore()
	userID := uuid.New()

	state := store.Issue(userID, entity.ProviderOpenFinance)
	require.NotEmpty(t, state)

	gotUser, gotProvider, ok := store.Consume(state)
	require.True(t, ok)
	assert.Equal(t, userID, gotUser)
	assert.Equal(t, entity.ProviderOpenFinance, gotProvider)
}

func TestStateStore_StateIsSingleUse(t *testing.T) {
	store := NewStateStore()

	state := store.Issue(uuid.New(), entity.ProviderSales)

	_, _, ok := store.Consume(state)
	require.True(t, ok)

	_, _, ok = store.Consume(state)
	assert.False(t, ok, "a consumed state must not be replayable")
}

func TestStateStore_UnknownStateRejected(t *testing.T) {
	store := NewStateStore()

	_, _, ok := store.Consume("never-issued")
	assert.False(t, ok)
}

func TestStateStore_ExpiredStateRejected(t *testing.T) {
	store := NewStateStore()
	current := time.Now()
	store.now = func() time.Time { return current }

	state := store.Issue(uuid.New(), entity.ProviderSales)

	current = current.Add(stateTTL + time.Second)

	_, _, ok := store.Consume(state)
	assert.False(t, ok, "states past their TTL must be rejected")
}

func TestStateStore_IssuePurgesExpiredStates(t *testing.T) {
	store := NewStateStore()
	current := time.Now()
	store.now = func() time.Time { return current }

	stale := store.Issue(uuid.New(), entity.ProviderSales)
	current = current.Add(stateTTL + time.Second)

	store.Issue(uuid.New(), entity.ProviderOpenFinance)

	store.mu.Lock()
	_, exists := store.states[stale]
	store.mu.Unlock()
	assert.False(t, exists, "issuing a new state should purge expired entries")
}

func TestStateStore_StatesAreUnique(t *testing.T) {
	store := NewStateStore()
	userID := uuid.New()

	seen := make(map[string]struct{})
	for range 50 {
		state := store.Issue(userID, entity.ProviderSales)
		_, dup := seen[state]
		require.False(t, dup)
		seen[state] = struct{}{}
	}
}
