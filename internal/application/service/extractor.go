package service

import (
	"context"

	"github.com/rosterhq/roster/internal/domain/portfolio"
)

// ExtractionResult is the partial record an extractor derives from a
// submitted portfolio URL. Employer IDs may be empty; the caller assigns them.
type ExtractionResult struct {
	BasicInfo portfolio.BasicInfo
	Employers []portfolio.Employer
}

// Extractor turns a portfolio URL into structured profile data. Extraction
// may be slow; implementations must honor ctx cancellation.
type Extractor interface {
	Extract(ctx context.Context, portfolioURL string) (*ExtractionResult, error)
}
