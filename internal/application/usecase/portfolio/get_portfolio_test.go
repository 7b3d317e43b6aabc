package portfolio_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	uc "github.com/rosterhq/roster/internal/application/usecase/portfolio"
)

func TestGetPortfolio(t *testing.T) {
	f := newFixture(t)
	submitted := f.submitSonu(t)

	out, err := f.get.Execute(context.Background(), uc.GetPortfolioInput{ProfileURL: "/profile/sonu"})
	require.NoError(t, err)
	require.NotNil(t, out.Portfolio)
	assert.Equal(t, submitted.ID, out.Portfolio.ID)
}

func TestGetPortfolioMissingIsNilNotError(t *testing.T) {
	f := newFixture(t)

	out, err := f.get.Execute(context.Background(), uc.GetPortfolioInput{ProfileURL: "/profile/doesnotexist"})
	require.NoError(t, err)
	assert.Nil(t, out.Portfolio)
}

func TestGetPortfolioMatchIsExact(t *testing.T) {
	f := newFixture(t)
	f.submitSonu(t)

	out, err := f.get.Execute(context.Background(), uc.GetPortfolioInput{ProfileURL: "/profile/Sonu"})
	require.NoError(t, err)
	assert.Nil(t, out.Portfolio, "lookup does not case-normalize")
}
