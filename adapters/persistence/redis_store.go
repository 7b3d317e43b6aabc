package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/rosterhq/roster/internal/domain/portfolio"
	"github.com/rosterhq/roster/pkg/apperror"
	"github.com/rosterhq/roster/pkg/logger"
)

// RedisStore keeps the collection as one JSON value under StorageKey,
// mirroring the browser-storage layout the system replaces.
type RedisStore struct {
	client *redis.Client
	key    string
	log    logger.Logger
}

func NewRedisStore(client *redis.Client, log logger.Logger) *RedisStore {
	return &RedisStore{client: client, key: StorageKey, log: log}
}

func (s *RedisStore) LoadAll(ctx context.Context) ([]portfolio.Portfolio, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []portfolio.Portfolio{}, nil
		}
		return nil, apperror.NewStorageUnavailable("failed to read portfolio document from redis", err)
	}
	return decodePortfolios(data)
}

func (s *RedisStore) SaveAll(ctx context.Context, portfolios []portfolio.Portfolio) error {
	data, err := encodePortfolios(portfolios)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return apperror.NewStorageUnavailable("failed to write portfolio document to redis", err)
	}
	return nil
}
