package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterhq/roster/internal/domain/portfolio"
	"github.com/rosterhq/roster/pkg/apperror"
	"github.com/rosterhq/roster/pkg/logger"
)

func newTestRepo(t *testing.T) portfolio.Repository {
	t.Helper()
	return NewPortfolioRepository(NewMemoryStore(), logger.NewNop())
}

func TestRepositoryInsertAndFind(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	p := samplePortfolios()[0]
	require.NoError(t, repo.Insert(ctx, &p))

	found, err := repo.FindBySlug(ctx, "/profile/sonu")
	require.NoError(t, err)
	assert.Equal(t, p.ID, found.ID)
	assert.Equal(t, "Sonu", found.BasicInfo.FirstName)

	// The returned record is a copy.
	found.Employers[0].Name = "Mutated"
	again, err := repo.FindBySlug(ctx, "/profile/sonu")
	require.NoError(t, err)
	assert.Equal(t, "Example Client", again.Employers[0].Name)
}

func TestRepositoryFindMissing(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.FindBySlug(context.Background(), "/profile/doesnotexist")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	p := samplePortfolios()[0]
	require.NoError(t, repo.Insert(ctx, &p))

	updated, err := repo.Update(ctx, "/profile/sonu", func(p *portfolio.Portfolio) error {
		p.BasicInfo.Summary = "Updated"
		p.UpdatedAt = time.Now().UTC()
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Updated", updated.BasicInfo.Summary)

	persisted, err := repo.FindBySlug(ctx, "/profile/sonu")
	require.NoError(t, err)
	assert.Equal(t, "Updated", persisted.BasicInfo.Summary)
}

func TestRepositoryUpdateMissingLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	p := samplePortfolios()[0]
	require.NoError(t, repo.Insert(ctx, &p))

	_, err := repo.Update(ctx, "/profile/doesnotexist", func(p *portfolio.Portfolio) error {
		p.BasicInfo.Summary = "should not happen"
		return nil
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Creative video editor.", all[0].BasicInfo.Summary)
}

func TestRepositoryUpdateMutateErrorDiscardsChanges(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	p := samplePortfolios()[0]
	require.NoError(t, repo.Insert(ctx, &p))

	wantErr := apperror.NewInvalidInput("bad employer", nil)
	_, err := repo.Update(ctx, "/profile/sonu", func(p *portfolio.Portfolio) error {
		p.BasicInfo.Summary = "half done"
		return wantErr
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	persisted, err := repo.FindBySlug(ctx, "/profile/sonu")
	require.NoError(t, err)
	assert.Equal(t, "Creative video editor.", persisted.BasicInfo.Summary)
}
