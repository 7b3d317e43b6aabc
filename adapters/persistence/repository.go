package persistence

import (
	"context"
	"sync"

	"github.com/rosterhq/roster/internal/domain/portfolio"
	"github.com/rosterhq/roster/pkg/apperror"
	"github.com/rosterhq/roster/pkg/logger"
	"go.uber.org/zap"
)

type portfolioRepository struct {
	store portfolio.Store
	mu    sync.Mutex
	log   logger.Logger
}

// NewPortfolioRepository wraps a Store with a repository that holds a mutex
// across each load-modify-save cycle, so concurrent operations in one
// process cannot lose each other's writes.
func NewPortfolioRepository(store portfolio.Store, log logger.Logger) portfolio.Repository {
	return &portfolioRepository{store: store, log: log}
}

func (r *portfolioRepository) Insert(ctx context.Context, p *portfolio.Portfolio) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.store.LoadAll(ctx)
	if err != nil {
		return err
	}
	all = append(all, p.Clone())
	if err := r.store.SaveAll(ctx, all); err != nil {
		return err
	}
	r.log.Debug("inserted portfolio", zap.String("id", p.ID), zap.String("slug", p.ProfileURL))
	return nil
}

func (r *portfolioRepository) FindBySlug(ctx context.Context, slug string) (*portfolio.Portfolio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ProfileURL == slug {
			found := all[i].Clone()
			return &found, nil
		}
	}
	return nil, apperror.NewNotFound("portfolio", slug)
}

func (r *portfolioRepository) Update(ctx context.Context, slug string, mutate func(*portfolio.Portfolio) error) (*portfolio.Portfolio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range all {
		if all[i].ProfileURL == slug {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperror.NewNotFound("portfolio", slug)
	}

	updated := all[idx].Clone()
	if err := mutate(&updated); err != nil {
		return nil, err
	}
	all[idx] = updated

	if err := r.store.SaveAll(ctx, all); err != nil {
		return nil, err
	}

	result := updated.Clone()
	return &result, nil
}

func (r *portfolioRepository) List(ctx context.Context) ([]portfolio.Portfolio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.LoadAll(ctx)
}
