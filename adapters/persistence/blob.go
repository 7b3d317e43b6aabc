package persistence

import (
	"encoding/json"

	"github.com/rosterhq/roster/internal/domain/portfolio"
	"github.com/rosterhq/roster/pkg/apperror"
)

// StorageKey names the single document every store backend reads and writes:
// the file name stem, the redis key and the postgres row key.
const StorageKey = "roster_portfolios"

func encodePortfolios(portfolios []portfolio.Portfolio) ([]byte, error) {
	if portfolios == nil {
		portfolios = []portfolio.Portfolio{}
	}
	data, err := json.Marshal(portfolios)
	if err != nil {
		return nil, apperror.NewInternal("failed to encode portfolio collection", err)
	}
	return data, nil
}

func decodePortfolios(data []byte) ([]portfolio.Portfolio, error) {
	if len(data) == 0 {
		return []portfolio.Portfolio{}, nil
	}
	var portfolios []portfolio.Portfolio
	if err := json.Unmarshal(data, &portfolios); err != nil {
		return nil, apperror.NewStorageUnavailable("persisted portfolio document is not valid JSON", err)
	}
	if portfolios == nil {
		portfolios = []portfolio.Portfolio{}
	}
	return portfolios, nil
}
