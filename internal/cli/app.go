package cli

import (
	"context"
	"fmt"

	"github.com/rosterhq/roster/adapters/extraction"
	"github.com/rosterhq/roster/adapters/persistence"
	portfolioUC "github.com/rosterhq/roster/internal/application/usecase/portfolio"
	"github.com/rosterhq/roster/internal/config"
	"github.com/rosterhq/roster/internal/domain/portfolio"
	"github.com/rosterhq/roster/pkg/logger"
)

// app is the composition root shared by all subcommands: config, logger,
// the selected record store, the repository and the use cases on top.
type app struct {
	cfg config.Config
	log logger.Logger

	submitPortfolio *portfolioUC.SubmitPortfolioUseCase
	getPortfolio    *portfolioUC.GetPortfolioUseCase
	updateBasicInfo *portfolioUC.UpdateBasicInfoUseCase
	upsertEmployer  *portfolioUC.UpsertEmployerUseCase
	deleteEmployer  *portfolioUC.DeleteEmployerUseCase

	closers []func()
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	log, err := logger.New(cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("init logger failed: %w", err)
	}

	a := &app{cfg: cfg, log: log}

	store, err := a.newStore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	repo := persistence.NewPortfolioRepository(store, log)
	extractor := extraction.NewStubExtractor(cfg.Extraction.Delay, log)

	a.submitPortfolio = portfolioUC.NewSubmitPortfolioUseCase(repo, extractor, cfg.Extraction.Timeout, log)
	a.getPortfolio = portfolioUC.NewGetPortfolioUseCase(repo)
	a.updateBasicInfo = portfolioUC.NewUpdateBasicInfoUseCase(repo)
	a.upsertEmployer = portfolioUC.NewUpsertEmployerUseCase(repo)
	a.deleteEmployer = portfolioUC.NewDeleteEmployerUseCase(repo)

	return a, nil
}

func (a *app) newStore(ctx context.Context) (portfolio.Store, error) {
	switch a.cfg.Storage.Driver {
	case "memory":
		return persistence.NewMemoryStore(), nil
	case "file":
		return persistence.NewFileStore(a.cfg.Storage.FilePath, a.log), nil
	case "redis":
		client, err := persistence.NewRedisClient(a.cfg, a.log)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { client.Close() })
		return persistence.NewRedisStore(client, a.log), nil
	case "postgres":
		pool, err := persistence.NewPostgresPool(a.cfg, a.log)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, pool.Close)
		store := persistence.NewPostgresStore(pool, a.log)
		if err := store.Init(ctx); err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q: must be memory, file, redis or postgres", a.cfg.Storage.Driver)
	}
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
