package persistence

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/rosterhq/roster/internal/domain/portfolio"
	"github.com/rosterhq/roster/pkg/apperror"
	"github.com/rosterhq/roster/pkg/logger"
	"go.uber.org/zap"
)

// FileStore persists the collection as one JSON document on disk.
// A missing file is the valid empty state; every save rewrites the file.
type FileStore struct {
	path string
	log  logger.Logger
}

func NewFileStore(path string, log logger.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

func (s *FileStore) LoadAll(ctx context.Context) ([]portfolio.Portfolio, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []portfolio.Portfolio{}, nil
		}
		return nil, apperror.NewStorageUnavailable("failed to read portfolio document", err)
	}
	return decodePortfolios(data)
}

func (s *FileStore) SaveAll(ctx context.Context, portfolios []portfolio.Portfolio) error {
	data, err := encodePortfolios(portfolios)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return apperror.NewStorageUnavailable("failed to write portfolio document", err)
	}
	s.log.Debug("saved portfolio document", zap.String("path", s.path), zap.Int("count", len(portfolios)))
	return nil
}
