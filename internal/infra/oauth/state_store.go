package oauth

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"finsight/internal/domain/entity"

	"github.com/google/uuid"
)

const stateTTL = 10 * time.Minute

// StateStore issues and validates the OAuth state parameter, binding each
// pending authorization to the initiating user for CSRF protection. States
// are single-use and expire after a few minutes.
type StateStore struct {
	mu     sync.Mutex
	states map[string]stateEntry
	now    func() time.Time
}

type stateEntry struct {
	userID   uuid.UUID
	provider entity.ProviderType
	expiry   time.Time
}

// NewStateStore creates an empty in-memory state store.
func NewStateStore() *StateStore {
	return &StateStore{
		states: make(map[string]stateEntry),
		now:    time.Now,
	}
}

// Issue generates a cryptographically random state bound to the user and
// provider, valid for a short window.
func (s *StateStore) Issue(userID uuid.UUID, provider entity.ProviderType) string {
	buf := make([]byte, 32)
	rand.Read(buf)
	state := hex.EncodeToString(buf)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[state] = stateEntry{
		userID:   userID,
		provider: provider,
		expiry:   s.now().Add(stateTTL),
	}
	s.cleanupLocked()

	return state
}

// Consume validates a state parameter and removes it so it cannot be
// replayed. It returns the user and provider the state was issued for.
func (s *StateStore) Consume(state string) (uuid.UUID, entity.ProviderType, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.states[state]
	if !exists {
		return uuid.Nil, "", false
	}
	delete(s.states, state)

	if s.now().After(entry.expiry) {
		return uuid.Nil, "", false
	}

	return entry.userID, entry.provider, true
}

// cleanupLocked removes expired states. Callers must hold the mutex.
func (s *StateStore) cleanupLocked() {
	now := s.now()
	for state, entry := range s.states {
		if now.After(entry.expiry) {
			delete(s.states, state)
		}
	}
}
