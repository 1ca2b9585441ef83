package sessions

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is a process-local Store. It backs tests and single-node
// deployments that run without Redis.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]Session
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[uuid.UUID]Session),
	}
}

// Get loads a session by ID.
func (s *MemoryStore) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}

	session := stored
	session.Flashes = append([]string(nil), stored.Flashes...)
	if stored.UserID != nil {
		uid := *stored.UserID
		session.UserID = &uid
	}
	return &session, nil
}

// Save stores a copy of the session.
func (s *MemoryStore) Save(ctx context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *session
	stored.Flashes = append([]string(nil), session.Flashes...)
	if session.UserID != nil {
		uid := *session.UserID
		stored.UserID = &uid
	}
	stored.dirty = false
	s.sessions[session.ID] = stored
	return nil
}

// Delete removes the session.
func (s *MemoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

// Len reports the number of stored sessions. Test helper.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
