package config

// Storage backends
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Defaults
const (
	DefaultStorageBackend = BackendSQLite
	DefaultSQLitePath     = "data/brandishpet.db"
	DefaultRedisAddr      = "localhost:6379"
	DefaultCacheSize      = 128
	DefaultWorkerCount    = 2
	DefaultQueueSize      = 64
	DefaultPort           = "8080"
	DefaultDBName         = "brandishpet"
)
