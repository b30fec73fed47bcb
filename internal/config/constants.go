package config

import "time"

const (
	// ConfigPathClickerTables is the default content table file
	ConfigPathClickerTables = "configs/clicker.json"
)

// Storage backends
const (
	StorageBackendMemory   = "memory"
	StorageBackendPostgres = "postgres"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultLogDir            = "logs"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "kiss-clicker"
	DefaultVersion           = "dev"
	DefaultStorageBackend    = StorageBackendPostgres
	DefaultDBUser            = "postgres"
	DefaultDBPassword        = "postgres"
	DefaultDBHost            = "localhost"
	DefaultDBPort            = "5432"
	DefaultDBName            = "kissclicker"
	DefaultDBSSLMode         = "disable"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultUpgradeCostPolicy = "deduct"
	DefaultStateCacheSize    = 1024
	DefaultStateCacheTTL     = 10 * time.Minute
	DefaultEventMaxRetries   = 5
	DefaultEventRetryDelay   = 2 * time.Second
	DefaultDeadLetterPath    = "logs/event_deadletter.jsonl"
	DefaultAPIURL            = "http://localhost:8080"
)
