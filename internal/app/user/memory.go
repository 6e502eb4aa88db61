package user

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore implements Store with a mutex-guarded slice. It backs the
// test suite.
type MemoryStore struct {
	mu    sync.RWMutex
	users []User
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Create(_ context.Context, u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Uniqueness by linear scan; the collection stays small.
	for i := range s.users {
		if s.users[i].Email == u.Email {
			return ErrDuplicateEmail
		}
	}

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}

	s.users = append(s.users, *u)
	return nil
}

func (s *MemoryStore) GetByEmail(_ context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].Email == email {
			copied := s.users[i]
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) Update(_ context.Context, email string, p Patch) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email != email {
			continue
		}

		if p.Name != nil {
			s.users[i].Name = *p.Name
		}
		if p.ProfilePicture != nil {
			s.users[i].ProfilePicture = *p.ProfilePicture
		}
		now := time.Now()
		s.users[i].UpdatedAt = &now

		copied := s.users[i]
		return &copied, nil
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) UpdatePassword(_ context.Context, email, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == email {
			s.users[i].PasswordHash = passwordHash
			now := time.Now()
			s.users[i].UpdatedAt = &now
			return nil
		}
	}
	return ErrNotFound
}

// Len reports how many accounts are stored. Used by tests to assert that a
// failed registration leaves the collection unchanged.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
