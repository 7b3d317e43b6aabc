package portfolio

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rosterhq/roster/internal/domain/portfolio"
	"github.com/rosterhq/roster/pkg/apperror"
)

type UpsertEmployerUseCase struct {
	portfolioRepo portfolio.Repository
}

func NewUpsertEmployerUseCase(repo portfolio.Repository) *UpsertEmployerUseCase {
	return &UpsertEmployerUseCase{portfolioRepo: repo}
}

// EmployerInput carries the employer fields from an edit form. ID is
// optional: when present and matching, the employer keeps its identity
// through a rename.
type EmployerInput struct {
	ID             string
	Name           string
	JobTitle       string
	Duration       string
	EmploymentType portfolio.EmploymentType
	Contribution   string
	Videos         []portfolio.Video
}

type UpsertEmployerInput struct {
	ProfileURL string
	Employer   EmployerInput
}

type UpsertEmployerOutput struct {
	Portfolio *portfolio.Portfolio
}

// Execute updates an existing employer or appends a new one. A
// caller-supplied ID that exists in the portfolio wins; otherwise the list
// is matched by exact name, preserving the matched employer's ID; otherwise
// a new employer is appended with a fresh ID. Videos are replaced wholesale.
func (uc *UpsertEmployerUseCase) Execute(ctx context.Context, input UpsertEmployerInput) (*UpsertEmployerOutput, error) {
	employer := portfolio.Employer{
		Name:           input.Employer.Name,
		JobTitle:       input.Employer.JobTitle,
		Duration:       input.Employer.Duration,
		EmploymentType: input.Employer.EmploymentType,
		Contribution:   input.Employer.Contribution,
		Videos:         input.Employer.Videos,
	}
	if err := employer.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("employer validation failed", err)
	}

	updated, err := uc.portfolioRepo.Update(ctx, input.ProfileURL, func(p *portfolio.Portfolio) error {
		idx := -1
		if input.Employer.ID != "" {
			idx = p.EmployerIndexByID(input.Employer.ID)
		}
		if idx < 0 {
			idx = p.EmployerIndexByName(employer.Name)
		}

		if idx >= 0 {
			employer.ID = p.Employers[idx].ID
			p.Employers[idx] = employer
		} else {
			employer.ID = uuid.NewString()
			p.Employers = append(p.Employers, employer)
		}

		p.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &UpsertEmployerOutput{Portfolio: updated}, nil
}
