package store

import (
	"context"
	"sync"

	"github.com/solutions-kit/os-tracker/internal/domain"
)

// MemoryStore keeps the collection in process memory. It backs tests and
// ephemeral runs with the same seeding contract as the durable backends.
type MemoryStore struct {
	mu      sync.RWMutex
	tickets []domain.Ticket
	seeded  bool
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWith builds a store pre-populated with tickets, bypassing
// the bootstrap seed.
func NewMemoryStoreWith(tickets []domain.Ticket) *MemoryStore {
	s := &MemoryStore{seeded: true}
	s.tickets = cloneAll(tickets)
	return s
}

func (s *MemoryStore) Load(ctx context.Context) ([]domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.seeded {
		s.tickets = seedCollection()
		s.seeded = true
	}
	return cloneAll(s.tickets), nil
}

func (s *MemoryStore) Save(ctx context.Context, tickets []domain.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tickets = cloneAll(tickets)
	s.seeded = true
	return nil
}

func cloneAll(tickets []domain.Ticket) []domain.Ticket {
	copied := make([]domain.Ticket, len(tickets))
	for i, t := range tickets {
		copied[i] = t.Clone()
	}
	return copied
}
