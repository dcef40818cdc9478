package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/BrandishPet_Go/internal/domain"
	"github.com/osse101/BrandishPet_Go/internal/mood"
	"github.com/osse101/BrandishPet_Go/internal/validation"
)

// Config holds the application configuration
type Config struct {
	Port        int `validate:"gte=0,lte=65535"`
	LogLevel    string
	LogFormat   string
	LogDir      string
	ServiceName string
	Version     string
	Environment string
	DevMode     bool

	// APIKey guards /api routes; empty disables the check
	APIKey         string
	TrustedProxies []string

	StorageBackend string `validate:"oneof=memory sqlite redis postgres"`
	SQLitePath     string `validate:"required_if=StorageBackend sqlite"`
	RedisAddr      string `validate:"required_if=StorageBackend redis"`
	RedisPassword  string
	RedisDB        int `validate:"gte=0"`

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	CatalogPath string
	CacheSize   int `validate:"gt=0"`
	WorkerCount int `validate:"gt=0"`
	QueueSize   int `validate:"gt=0"`

	DecayInterval        time.Duration `validate:"gt=0"`
	AnimationDuration    time.Duration `validate:"gte=0"`
	HungerDecay          float64       `validate:"gte=0"`
	EnergyDecay          float64       `validate:"gte=0"`
	CleanlinessDecay     float64       `validate:"gte=0"`
	HappinessDecay       float64       `validate:"gte=0"`
	NeglectHealthPenalty float64       `validate:"gte=0"`

	// Warnings lists non-fatal environment problems found while loading
	Warnings []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	warnings, err := ValidateEnvWithWarnings()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		LogDir:      getEnv("LOG_DIR", "logs"),
		ServiceName: getEnv("SERVICE_NAME", "brandishpet"),
		Version:     getEnv("VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		DevMode:     getEnvAsBool("DEV_MODE", false),

		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		StorageBackend: getEnv("STORAGE_BACKEND", DefaultStorageBackend),
		SQLitePath:     getEnv("SQLITE_PATH", DefaultSQLitePath),
		RedisAddr:      getEnv("REDIS_ADDR", DefaultRedisAddr),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvAsInt("REDIS_DB", 0),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", 20),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),

		CatalogPath: getEnv("CATALOG_PATH", ""),
		CacheSize:   getEnvAsInt("CACHE_SIZE", DefaultCacheSize),
		WorkerCount: getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		QueueSize:   getEnvAsInt("QUEUE_SIZE", DefaultQueueSize),

		DecayInterval:        getEnvAsDuration("DECAY_INTERVAL", mood.DefaultTickInterval),
		AnimationDuration:    getEnvAsDuration("ANIMATION_DURATION", mood.DefaultAnimationDuration),
		HungerDecay:          getEnvAsFloat("DECAY_HUNGER", mood.DefaultHungerDecay),
		EnergyDecay:          getEnvAsFloat("DECAY_ENERGY", mood.DefaultEnergyDecay),
		CleanlinessDecay:     getEnvAsFloat("DECAY_CLEANLINESS", mood.DefaultCleanlinessDecay),
		HappinessDecay:       getEnvAsFloat("DECAY_HAPPINESS", mood.DefaultHappinessDecay),
		NeglectHealthPenalty: getEnvAsFloat("NEGLECT_HEALTH_PENALTY", mood.DefaultNeglectHealthPenalty),

		Warnings: warnings,
	}

	portStr := getEnv("PORT", DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := validation.Get().ValidateStruct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MoodConfig returns the decay and animation settings for the mood engine
func (c *Config) MoodConfig() mood.Config {
	return mood.Config{
		DecayRates: domain.StatDeltas{
			domain.StatHunger:      c.HungerDecay,
			domain.StatEnergy:      c.EnergyDecay,
			domain.StatCleanliness: c.CleanlinessDecay,
			domain.StatHappiness:   c.HappinessDecay,
		},
		TickInterval:         c.DecayInterval,
		AnimationDuration:    c.AnimationDuration,
		NeglectHealthPenalty: c.NeglectHealthPenalty,
	}
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma separated variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvAsInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}
