package portfolio

import (
	"context"
	"time"

	"github.com/rosterhq/roster/internal/domain/portfolio"
)

type UpdateBasicInfoUseCase struct {
	portfolioRepo portfolio.Repository
}

func NewUpdateBasicInfoUseCase(repo portfolio.Repository) *UpdateBasicInfoUseCase {
	return &UpdateBasicInfoUseCase{portfolioRepo: repo}
}

type UpdateBasicInfoInput struct {
	ProfileURL string
	BasicInfo  portfolio.BasicInfo
}

type UpdateBasicInfoOutput struct {
	Portfolio *portfolio.Portfolio
}

// Execute replaces the basic info wholesale. The profile slug stays as
// captured at creation even when the first name changes.
func (uc *UpdateBasicInfoUseCase) Execute(ctx context.Context, input UpdateBasicInfoInput) (*UpdateBasicInfoOutput, error) {
	updated, err := uc.portfolioRepo.Update(ctx, input.ProfileURL, func(p *portfolio.Portfolio) error {
		p.BasicInfo = input.BasicInfo
		p.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &UpdateBasicInfoOutput{Portfolio: updated}, nil
}
