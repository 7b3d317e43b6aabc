package portfolio_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rosterhq/roster/adapters/persistence"
	"github.com/rosterhq/roster/internal/application/service"
	uc "github.com/rosterhq/roster/internal/application/usecase/portfolio"
	domain "github.com/rosterhq/roster/internal/domain/portfolio"
	"github.com/rosterhq/roster/pkg/logger"
)

type fakeExtractor struct {
	result *service.ExtractionResult
	err    error
	calls  int
}

func (f *fakeExtractor) Extract(ctx context.Context, portfolioURL string) (*service.ExtractionResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	res := *f.result
	return &res, nil
}

func extractedSonu() *service.ExtractionResult {
	return &service.ExtractionResult{
		BasicInfo: domain.BasicInfo{
			FirstName: "Sonu",
			LastName:  "Choudhary",
			Summary:   "Creative video editor with a passion for storytelling through visual media.",
		},
		Employers: []domain.Employer{
			{
				Name:           "Example Client",
				JobTitle:       "Senior Video Editor",
				Duration:       "2022 - Present",
				EmploymentType: domain.EmploymentContract,
				Contribution:   "Led video editing for major brand campaigns and social media content.",
				Videos: []domain.Video{
					{Title: "Brand Campaign 2023", URL: "https://example.com/video1", Thumbnail: "https://example.com/thumb1.jpg"},
				},
			},
		},
	}
}

type fixture struct {
	repo      domain.Repository
	extractor *fakeExtractor

	submit     *uc.SubmitPortfolioUseCase
	get        *uc.GetPortfolioUseCase
	updateInfo *uc.UpdateBasicInfoUseCase
	upsert     *uc.UpsertEmployerUseCase
	delete     *uc.DeleteEmployerUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logger.NewNop()
	repo := persistence.NewPortfolioRepository(persistence.NewMemoryStore(), log)
	extractor := &fakeExtractor{result: extractedSonu()}

	return &fixture{
		repo:       repo,
		extractor:  extractor,
		submit:     uc.NewSubmitPortfolioUseCase(repo, extractor, time.Second, log),
		get:        uc.NewGetPortfolioUseCase(repo),
		updateInfo: uc.NewUpdateBasicInfoUseCase(repo),
		upsert:     uc.NewUpsertEmployerUseCase(repo),
		delete:     uc.NewDeleteEmployerUseCase(repo),
	}
}

// submitSonu creates one portfolio and returns it.
func (f *fixture) submitSonu(t *testing.T) *domain.Portfolio {
	t.Helper()
	out, err := f.submit.Execute(context.Background(), uc.SubmitPortfolioInput{
		PortfolioURL: "https://example.com/portfolio",
	})
	require.NoError(t, err)
	return out.Portfolio
}
