package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/tinklepaw-gacha/internal/catalog"
	"github.com/osse101/tinklepaw-gacha/internal/config"
	"github.com/osse101/tinklepaw-gacha/internal/database/postgres"
	"github.com/osse101/tinklepaw-gacha/internal/draw"
	"github.com/osse101/tinklepaw-gacha/internal/history"
	"github.com/osse101/tinklepaw-gacha/internal/repository"
	"github.com/osse101/tinklepaw-gacha/internal/server"
)

// Repositories holds the Postgres-backed gateways to the remote gacha state
type Repositories struct {
	Draw    repository.DrawProcedure
	Ledger  repository.PullLedger
	Catalog repository.Catalog
}

// InitializeRepositories creates all repository implementations on one pool
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Draw:    postgres.NewDrawRepository(dbPool),
		Ledger:  postgres.NewLedgerRepository(dbPool),
		Catalog: postgres.NewCatalogRepository(dbPool),
	}
}

// InitializeServices builds the services the HTTP server exposes
func InitializeServices(cfg *config.Config, repos *Repositories) server.Services {
	return server.Services{
		Draw:    draw.NewService(repos.Draw, draw.ParseFatalPolicy(cfg.DrawFatalPolicy)),
		History: history.NewService(repos.Ledger),
		Catalog: catalog.NewService(repos.Catalog, catalog.CacheConfig{
			Size: cfg.CatalogCacheSize,
			TTL:  cfg.CatalogCacheTTL,
		}),
	}
}
