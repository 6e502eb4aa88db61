package reservation

import (
	"context"
	"sync"
)

// MemoryStore implements Store with mutex-guarded slices. It backs the tests.
type MemoryStore struct {
	mu        sync.RWMutex
	inquiries []Inquiry
	contacts  []ContactMessage
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) SaveInquiry(_ context.Context, inq *Inquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inquiries = append(s.inquiries, *inq)
	return nil
}

func (s *MemoryStore) SaveContactMessage(_ context.Context, msg *ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = append(s.contacts, *msg)
	return nil
}

// Inquiries returns a copy of the stored inquiries.
func (s *MemoryStore) Inquiries() []Inquiry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	copied := make([]Inquiry, len(s.inquiries))
	copy(copied, s.inquiries)
	return copied
}

// ContactMessages returns a copy of the stored contact messages.
func (s *MemoryStore) ContactMessages() []ContactMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	copied := make([]ContactMessage, len(s.contacts))
	copy(copied, s.contacts)
	return copied
}
