package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/solutions-kit/os-tracker/internal/domain"
	"github.com/solutions-kit/os-tracker/pkg/util"
)

// RedisStore persists the collection as a single serialized value under the
// namespace key, for deployments that want a remote durable backend.
type RedisStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisStore wraps an established go-redis client.
func NewRedisStore(client *redis.Client, logger *zap.Logger) *RedisStore {
	return &RedisStore{client: client, logger: logger}
}

func (s *RedisStore) Load(ctx context.Context) ([]domain.Ticket, error) {
	raw, err := s.client.Get(ctx, Namespace).Bytes()
	if errors.Is(err, redis.Nil) {
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

func (s *RedisStore) Save(ctx context.Context, tickets []domain.Ticket) error {
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	raw, err := json.Marshal(tickets)
	if err != nil {
		return util.NewInternalError(fmt.Errorf("encode collection: %w", err))
	}
	if err := s.client.Set(ctx, Namespace, raw, 0).Err(); err != nil {
		return util.NewInternalError(fmt.Errorf("save collection: %w", err))
	}
	return nil
}
