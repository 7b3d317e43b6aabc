package portfolio

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rosterhq/roster/internal/application/service"
	"github.com/rosterhq/roster/internal/domain/portfolio"
	"github.com/rosterhq/roster/pkg/apperror"
	"github.com/rosterhq/roster/pkg/logger"
)

type SubmitPortfolioUseCase struct {
	portfolioRepo portfolio.Repository
	extractor     service.Extractor
	timeout       time.Duration
	logger        logger.Logger
}

func NewSubmitPortfolioUseCase(repo portfolio.Repository, extractor service.Extractor, timeout time.Duration, log logger.Logger) *SubmitPortfolioUseCase {
	return &SubmitPortfolioUseCase{
		portfolioRepo: repo,
		extractor:     extractor,
		timeout:       timeout,
		logger:        log,
	}
}

type SubmitPortfolioInput struct {
	PortfolioURL string
}

type SubmitPortfolioOutput struct {
	Portfolio *portfolio.Portfolio
}

func (uc *SubmitPortfolioUseCase) Execute(ctx context.Context, input SubmitPortfolioInput) (*SubmitPortfolioOutput, error) {
	url := strings.TrimSpace(input.PortfolioURL)
	if url == "" {
		return nil, apperror.NewInvalidInput("portfolio url must not be empty", nil)
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, apperror.NewInvalidInput("portfolio url must start with http:// or https://", nil)
	}

	extractCtx := ctx
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		extractCtx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	result, err := uc.extractor.Extract(extractCtx, url)
	if err != nil {
		return nil, fmt.Errorf("extract portfolio failed: %w", err)
	}
	if strings.TrimSpace(result.BasicInfo.FirstName) == "" {
		return nil, apperror.NewExtractionIncomplete("extractor returned no first name")
	}

	slug, err := uc.uniqueSlug(ctx, result.BasicInfo.FirstName)
	if err != nil {
		return nil, err
	}

	employers := make([]portfolio.Employer, len(result.Employers))
	for i, e := range result.Employers {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		employers[i] = e
	}

	now := time.Now().UTC()
	newPortfolio := &portfolio.Portfolio{
		ID:           uuid.NewString(),
		PortfolioURL: url,
		ProfileURL:   slug,
		BasicInfo:    result.BasicInfo,
		Employers:    employers,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.portfolioRepo.Insert(ctx, newPortfolio); err != nil {
		return nil, fmt.Errorf("persist portfolio failed: %w", err)
	}

	uc.logger.Info("Portfolio submitted",
		zap.String("id", newPortfolio.ID),
		zap.String("slug", newPortfolio.ProfileURL),
	)
	return &SubmitPortfolioOutput{Portfolio: newPortfolio}, nil
}

// uniqueSlug derives the profile path from the first name and appends a
// numeric suffix when another portfolio already claimed it.
func (uc *SubmitPortfolioUseCase) uniqueSlug(ctx context.Context, firstName string) (string, error) {
	base := portfolio.Slug(firstName)
	slug := base
	for i := 2; ; i++ {
		_, err := uc.portfolioRepo.FindBySlug(ctx, slug)
		if errors.Is(err, apperror.ErrNotFound) {
			return slug, nil
		}
		if err != nil {
			return "", err
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
