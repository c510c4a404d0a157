package catalog

// Cache kinds, used as metric labels and key prefixes
const (
	CacheKindPools     = "pools"
	CacheKindPoolItems = "pool_items"
)

// activePoolsKey is the single key the pool list is stored under
const activePoolsKey = "active"

const (
	LogMsgListPoolsCalled     = "ListPools called"
	LogMsgListPoolItemsCalled = "ListPoolItems called"
	LogMsgGetStatusCalled     = "GetStatus called"
	LogMsgCacheInvalidated    = "Catalog cache invalidated"
	LogMsgPoolsRefreshed      = "Active pools refreshed"
)

const (
	ErrContextListPools     = "failed to list pools"
	ErrContextListPoolItems = "failed to list pool items"
	ErrContextGetStatus     = "failed to get user status"
	ErrContextRefreshPools  = "failed to refresh pools"
)
