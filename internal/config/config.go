package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	APIKey      string // API key for authentication
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	ServiceName string
	Version     string

	// Storage
	StorageBackend    string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBSSLMode         string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// Game
	ClickerTablesPath string
	UpgradeCostPolicy string
	StateCacheSize    int
	StateCacheTTL     time.Duration

	// Events
	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string

	// HTTP
	TrustedProxies []string

	// Discord front-end
	DiscordToken   string
	DiscordAppID   string
	DiscordGuildID string
	APIURL         string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),

		StorageBackend:    strings.ToLower(getEnv("STORAGE_BACKEND", DefaultStorageBackend)),
		DBUser:            getEnv("DB_USER", DefaultDBUser),
		DBPassword:        getEnv("DB_PASSWORD", DefaultDBPassword),
		DBHost:            getEnv("DB_HOST", DefaultDBHost),
		DBPort:            getEnv("DB_PORT", DefaultDBPort),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBSSLMode:         getEnv("DB_SSLMODE", DefaultDBSSLMode),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		ClickerTablesPath: getEnv("CLICKER_TABLES_PATH", ConfigPathClickerTables),
		UpgradeCostPolicy: getEnv("UPGRADE_COST_POLICY", DefaultUpgradeCostPolicy),
		StateCacheSize:    getEnvAsInt("STATE_CACHE_SIZE", DefaultStateCacheSize),
		StateCacheTTL:     getEnvAsDuration("STATE_CACHE_TTL", DefaultStateCacheTTL),

		EventMaxRetries:     getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:     getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", DefaultDeadLetterPath),

		TrustedProxies: getEnvAsSlice("TRUSTED_PROXIES"),

		DiscordToken:   getEnv("DISCORD_TOKEN", ""),
		DiscordAppID:   getEnv("DISCORD_APP_ID", ""),
		DiscordGuildID: getEnv("DISCORD_GUILD_ID", ""),
		APIURL:         strings.TrimRight(getEnv("API_URL", DefaultAPIURL), "/"),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	switch cfg.StorageBackend {
	case StorageBackendMemory, StorageBackendPostgres:
	default:
		return nil, fmt.Errorf("invalid STORAGE_BACKEND %q: expected %s or %s",
			cfg.StorageBackend, StorageBackendMemory, StorageBackendPostgres)
	}

	return cfg, nil
}

// UsesPostgres reports whether saves live in Postgres
func (c *Config) UsesPostgres() bool {
	return c.StorageBackend == StorageBackendPostgres
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	sslMode := c.DBSSLMode
	if sslMode == "" {
		sslMode = DefaultDBSSLMode
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
		sslMode,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsDuration parses a Go duration, falling back to the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsSlice splits a comma separated variable, dropping blanks
func getEnvAsSlice(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
