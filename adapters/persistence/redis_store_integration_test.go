package persistence

import (
	"context"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/rosterhq/roster/pkg/logger"
)

type RedisStoreIntegrationTestSuite struct {
	suite.Suite
	client         *goredis.Client
	redisContainer *tcredis.RedisContainer
	store          *RedisStore
}

func (s *RedisStoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	redisContainer, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		s.T().Fatalf("Failed to start redis container: %s", err)
	}
	s.redisContainer = redisContainer

	connStr, err := redisContainer.ConnectionString(ctx)
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	opts, err := goredis.ParseURL(connStr)
	if err != nil {
		s.T().Fatalf("Failed to parse redis url: %s", err)
	}
	s.client = goredis.NewClient(opts)

	s.store = NewRedisStore(s.client, logger.NewNop())
}

func (s *RedisStoreIntegrationTestSuite) TearDownSuite() {
	if s.client != nil {
		s.client.Close()
	}
	if s.redisContainer != nil {
		if err := s.redisContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate redis container: %s", err)
		}
	}
}

func (s *RedisStoreIntegrationTestSuite) SetupTest() {
	s.NoError(s.client.Del(context.Background(), StorageKey).Err())
}

func TestRedisStoreIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(RedisStoreIntegrationTestSuite))
}

func (s *RedisStoreIntegrationTestSuite) Test_EmptyThenRoundTrip() {
	ctx := context.Background()

	loaded, err := s.store.LoadAll(ctx)
	s.NoError(err)
	s.Empty(loaded)

	s.NoError(s.store.SaveAll(ctx, samplePortfolios()))

	loaded, err = s.store.LoadAll(ctx)
	s.NoError(err)
	s.Len(loaded, 1)
	s.Equal("/profile/sonu", loaded[0].ProfileURL)
	s.Equal("Sonu", loaded[0].BasicInfo.FirstName)
}

func (s *RedisStoreIntegrationTestSuite) Test_SaveReplacesDocument() {
	ctx := context.Background()

	s.NoError(s.store.SaveAll(ctx, samplePortfolios()))
	s.NoError(s.store.SaveAll(ctx, nil))

	loaded, err := s.store.LoadAll(ctx)
	s.NoError(err)
	s.Empty(loaded)
}
