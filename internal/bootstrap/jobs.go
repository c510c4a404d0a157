package bootstrap

import (
	"time"

	"github.com/osse101/tinklepaw-gacha/internal/catalog"
	"github.com/osse101/tinklepaw-gacha/internal/scheduler"
)

// JobNameCatalogRefresh names the pool list refresher in logs
const JobNameCatalogRefresh = "catalog-refresh"

// minRefreshInterval keeps a tiny cache TTL from turning into a busy loop
const minRefreshInterval = time.Second

// StartScheduler starts the background jobs. The active pool list is reloaded
// at half the cache TTL so the draw path and bot autocomplete stay warm.
func StartScheduler(cacheTTL time.Duration, catalogSvc catalog.Service) *scheduler.Scheduler {
	sched := scheduler.New()
	sched.Schedule(JobNameCatalogRefresh, refreshInterval(cacheTTL), catalogSvc.RefreshPools)
	return sched
}

func refreshInterval(cacheTTL time.Duration) time.Duration {
	return max(cacheTTL/2, minRefreshInterval)
}
