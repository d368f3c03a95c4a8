// Package store owns the durable ticket collection. Every mutation in the
// lifecycle service funnels through Save; Load seeds a bootstrap ticket the
// first time the backing medium is found empty.
package store

import (
	"context"

	"github.com/solutions-kit/os-tracker/internal/domain"
)

// Namespace is the fixed application-scoped key under which the ticket
// collection is persisted, carried over from the original application.
const Namespace = "solutions_tickets"

// Store synchronizes the authoritative ticket collection with a durable
// backing medium. Save replaces the entire collection; readers observe
// either the old or the fully-new state, never a partial write.
type Store interface {
	Load(ctx context.Context) ([]domain.Ticket, error)
	Save(ctx context.Context, tickets []domain.Ticket) error
}
