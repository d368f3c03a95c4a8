package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/solutions-kit/os-tracker/internal/domain"
	"github.com/solutions-kit/os-tracker/pkg/util"
)

// PostgresStore persists the collection as one jsonb record per namespace in
// the ticket_collections table. The whole-document layout keeps the
// replace-on-save contract identical across backends.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPostgresStore wraps an established pgx pool.
func NewPostgresStore(pool *pgxpool.Pool, logger *zap.Logger) *PostgresStore {
	return &PostgresStore{pool: pool, logger: logger}
}

func (s *PostgresStore) Load(ctx context.Context) ([]domain.Ticket, error) {
	const query = `SELECT payload FROM ticket_collections WHERE namespace=$1`

	var raw []byte
	err := s.pool.QueryRow(ctx, query, Namespace).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		seeded := seedCollection()
		if err := s.Save(ctx, seeded); err != nil {
			return nil, err
		}
		s.logger.Info("seeded ticket collection", zap.String("namespace", Namespace))
		return seeded, nil
	}
	if err != nil {
		return nil, util.NewInternalError(fmt.Errorf("load collection: %w", err))
	}

	var tickets []domain.Ticket
	if err := json.Unmarshal(raw, &tickets); err != nil {
		return nil, util.NewCorruptState(fmt.Errorf("decode collection %s: %w", Namespace, err))
	}
	return tickets, nil
}

func (s *PostgresStore) Save(ctx context.Context, tickets []domain.Ticket) error {
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	raw, err := json.Marshal(tickets)
	if err != nil {
		return util.NewInternalError(fmt.Errorf("encode collection: %w", err))
	}

	const query = `
        INSERT INTO ticket_collections (namespace, payload, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (namespace) DO UPDATE SET payload=EXCLUDED.payload, updated_at=NOW()`
	if _, err := s.pool.Exec(ctx, query, Namespace, raw); err != nil {
		return util.NewInternalError(fmt.Errorf("save collection: %w", err))
	}
	return nil
}
