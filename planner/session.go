package planner

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultSessionTTL is how long an untouched session survives. Layouts are
// never persisted — navigating away and coming back starts from scratch.
const DefaultSessionTTL = 2 * time.Hour

// SessionManager holds the live planner stores keyed by session id.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Store
	ttl      time.Duration
}

func NewSessionManager(ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionManager{sessions: map[string]*Store{}, ttl: ttl}
}

// Create opens a fresh empty session and returns its id.
func (m *SessionManager) Create(room RoomDimensions, scale float64) (string, *Store) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweepLocked()

	id := uuid.NewString()
	store := NewStore(room, scale)
	m.sessions[id] = store
	return id, store
}

// Get returns the store for id, or nil if it doesn't exist or has expired.
func (m *SessionManager) Get(id string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	store, ok := m.sessions[id]
	if !ok {
		return nil
	}
	if time.Since(store.LastTouched()) > m.ttl {
		delete(m.sessions, id)
		return nil
	}
	return store
}

// Destroy discards the session and everything in it.
func (m *SessionManager) Destroy(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

func (m *SessionManager) sweepLocked() {
	for id, store := range m.sessions {
		if time.Since(store.LastTouched()) > m.ttl {
			delete(m.sessions, id)
		}
	}
}
