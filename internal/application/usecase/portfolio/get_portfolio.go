package portfolio

import (
	"context"
	"errors"

	"github.com/rosterhq/roster/internal/domain/portfolio"
	"github.com/rosterhq/roster/pkg/apperror"
)

type GetPortfolioUseCase struct {
	portfolioRepo portfolio.Repository
}

func NewGetPortfolioUseCase(repo portfolio.Repository) *GetPortfolioUseCase {
	return &GetPortfolioUseCase{portfolioRepo: repo}
}

type GetPortfolioInput struct {
	ProfileURL string
}

type GetPortfolioOutput struct {
	// Portfolio is nil when no record matches the slug; a missing
	// portfolio is not an error for reads.
	Portfolio *portfolio.Portfolio
}

func (uc *GetPortfolioUseCase) Execute(ctx context.Context, input GetPortfolioInput) (*GetPortfolioOutput, error) {
	p, err := uc.portfolioRepo.FindBySlug(ctx, input.ProfileURL)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return &GetPortfolioOutput{Portfolio: nil}, nil
		}
		return nil, err
	}
	return &GetPortfolioOutput{Portfolio: p}, nil
}
