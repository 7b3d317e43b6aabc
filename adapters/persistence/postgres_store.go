package persistence

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rosterhq/roster/internal/domain/portfolio"
	"github.com/rosterhq/roster/pkg/apperror"
	"github.com/rosterhq/roster/pkg/logger"
)

var psqlBlobs = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PostgresStore keeps the collection as a single JSONB row in record_blobs,
// keyed by StorageKey. The whole document is replaced on every save.
type PostgresStore struct {
	db  *pgxpool.Pool
	key string
	log logger.Logger
}

func NewPostgresStore(db *pgxpool.Pool, log logger.Logger) *PostgresStore {
	return &PostgresStore{db: db, key: StorageKey, log: log}
}

// Init creates the backing table when it does not exist yet.
func (s *PostgresStore) Init(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS record_blobs (
			key        TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)
	`
	if _, err := s.db.Exec(ctx, query); err != nil {
		return apperror.NewStorageUnavailable("failed to create record_blobs table", err)
	}
	return nil
}

func (s *PostgresStore) LoadAll(ctx context.Context) ([]portfolio.Portfolio, error) {
	sql, args, err := psqlBlobs.
		Select("data").
		From("record_blobs").
		Where(sq.Eq{"key": s.key}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build load query", err)
	}

	var data []byte
	if err := s.db.QueryRow(ctx, sql, args...).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []portfolio.Portfolio{}, nil
		}
		return nil, apperror.NewStorageUnavailable("failed to read portfolio document from postgres", err)
	}
	return decodePortfolios(data)
}

func (s *PostgresStore) SaveAll(ctx context.Context, portfolios []portfolio.Portfolio) error {
	data, err := encodePortfolios(portfolios)
	if err != nil {
		return err
	}

	sql, args, err := psqlBlobs.
		Insert("record_blobs").
		Columns("key", "data", "updated_at").
		Values(s.key, data, time.Now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build save query", err)
	}

	if _, err := s.db.Exec(ctx, sql, args...); err != nil {
		return apperror.NewStorageUnavailable("failed to write portfolio document to postgres", err)
	}
	return nil
}
