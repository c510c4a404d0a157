package config

import "time"

// Defaults applied when the environment leaves a setting unset
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultServiceName = "tinklepaw-gacha"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"

	DefaultDBName            = "tinklepaw"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultDrawFatalPolicy  = "abort"
	DefaultCatalogCacheTTL  = 60 * time.Second
	DefaultCatalogCacheSize = 256

	DefaultShutdownTimeout = 15 * time.Second
)
