// internal/store/session.go
package store

import (
	"sync"

	"github.com/novamart/storefront-api/internal/models"
)

// UserSlot is the single named slot holding the authenticated user.
const UserSlot = "user"

// SessionStore holds the current authenticated user and mirrors it into
// the local persisted slot. If the slot is present at startup the
// authenticated state is restored without re-validating credentials.
type SessionStore struct {
	mu    sync.RWMutex
	local *LocalStore
	user  *models.User
}

func NewSessionStore(local *LocalStore) (*SessionStore, error) {
	s := &SessionStore{local: local}

	var saved models.User
	found, err := local.Get(UserSlot, &saved)
	if err != nil {
		return nil, err
	}
	if found {
		s.user = &saved
	}
	return s, nil
}

// Current returns the authenticated user, or nil when anonymous.
func (s *SessionStore) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Set stores the user and persists it to the slot.
func (s *SessionStore) Set(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.local.Put(UserSlot, user); err != nil {
		return err
	}
	u := *user
	s.user = &u
	return nil
}

// Clear drops the user and deletes the persisted slot.
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.local.Delete(UserSlot); err != nil {
		return err
	}
	s.user = nil
	return nil
}
