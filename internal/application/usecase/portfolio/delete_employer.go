package portfolio

import (
	"context"
	"time"

	"github.com/rosterhq/roster/internal/domain/portfolio"
)

type DeleteEmployerUseCase struct {
	portfolioRepo portfolio.Repository
}

func NewDeleteEmployerUseCase(repo portfolio.Repository) *DeleteEmployerUseCase {
	return &DeleteEmployerUseCase{portfolioRepo: repo}
}

type DeleteEmployerInput struct {
	ProfileURL string
	EmployerID string
}

type DeleteEmployerOutput struct {
	Portfolio *portfolio.Portfolio
}

// Execute removes the employer with the given ID. Deleting an ID that is
// not in the list is a no-op, not an error.
func (uc *DeleteEmployerUseCase) Execute(ctx context.Context, input DeleteEmployerInput) (*DeleteEmployerOutput, error) {
	updated, err := uc.portfolioRepo.Update(ctx, input.ProfileURL, func(p *portfolio.Portfolio) error {
		kept := p.Employers[:0]
		for _, e := range p.Employers {
			if e.ID != input.EmployerID {
				kept = append(kept, e)
			}
		}
		p.Employers = kept
		p.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &DeleteEmployerOutput{Portfolio: updated}, nil
}
