package cli

import (
	"context"
	"fmt"

	"github.com/rogerio-castellano/commerce-dashboard/internal/db"
	"github.com/rogerio-castellano/commerce-dashboard/internal/repo"
	"github.com/rogerio-castellano/commerce-dashboard/internal/store"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func (a *app) bind(key string, flag *pflag.Flag) {
	if err := a.v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", flag.Name, err))
	}
}

// seedSource opens the configured seed. The returned func releases whatever the
// source holds open.
func (a *app) seedSource(ctx context.Context) (repo.SeedSource, func(), error) {
	sc := a.cfg.Seed
	switch sc.Source {
	case "file":
		return repo.FileSeed{Path: sc.File}, func() {}, nil
	case "fake":
		return repo.FakeSeed{Count: sc.FakeCount, Seed: sc.FakeSeed}, func() {}, nil
	case "postgres":
		database, err := db.Connect(ctx, a.cfg.Database.URL)
		if err != nil {
			return nil, nil, err
		}
		seed := repo.NewPostgresSeed(database)
		seed.Category = sc.Category
		seed.Limit = sc.Limit
		a.log.Info("seeding from postgres", zap.String("category", sc.Category), zap.Uint64("limit", sc.Limit))
		return seed, func() { database.Close() }, nil
	default:
		return repo.EmbeddedSeed{}, func() {}, nil
	}
}

func (a *app) storeOptions() store.Options {
	dc := a.cfg.Dashboard
	return store.Options{
		PageSize:          dc.PageSize,
		LowStockThreshold: dc.LowStockThreshold,
		SearchDebounce:    dc.SearchDebounce,
		TopProducts:       dc.TopProducts,
	}
}

// loadDashboard seeds a single dashboard outside of any HTTP session.
func (a *app) loadDashboard(ctx context.Context) (*store.Dashboard, error) {
	seed, release, err := a.seedSource(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	r := repo.NewInMemoryProductRepository()
	if err := repo.Seed(ctx, r, seed); err != nil {
		return nil, fmt.Errorf("seed products: %w", err)
	}
	return store.NewDashboard(r, a.storeOptions(), a.log), nil
}
