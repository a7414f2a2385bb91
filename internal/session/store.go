package session

import (
	"sync"

	"github.com/google/uuid"
)

// Store is an in-memory registry of conversations keyed by ID.
type Store struct {
	mu            sync.RWMutex
	conversations map[uuid.UUID]*Conversation
	maxSize       int
}

// NewStore creates a Store holding at most maxSize conversations.
// A maxSize of zero or less means no limit.
func NewStore(maxSize int) *Store {
	return &Store{
		conversations: make(map[uuid.UUID]*Conversation),
		maxSize:       maxSize,
	}
}

// Create registers a new empty conversation.
func (s *Store) Create() (*Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxSize > 0 && len(s.conversations) >= s.maxSize {
		return nil, ErrStoreFull
	}

	c := NewConversation()
	s.conversations[c.ID()] = c
	return c, nil
}

// Get returns the conversation with the given ID.
func (s *Store) Get(id uuid.UUID) (*Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.conversations[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return c, nil
}

// Delete removes the conversation with the given ID.
func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conversations[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.conversations, id)
	return nil
}

// Count returns the number of stored conversations.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.conversations)
}
