package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Lock     LockConfig
	Logger   LoggerConfig
	Resource ResourceConfig
	Seed     SeedConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	BaseURL               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values. An empty DSN selects the in-memory store.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values. An empty Addr disables Redis.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LockConfig tunes the per-department creation lock.
type LockConfig struct {
	TTLMillis         int
	WaitTimeoutMillis int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level  string
	Format string // json or console
}

// ResourceConfig holds pagination defaults for the exposed resources.
type ResourceConfig struct {
	DepartmentPageSize int
	EmployeePageSize   int
	MaxPageSize        int
}

// SeedConfig controls startup sample data.
type SeedConfig struct {
	Enabled                bool
	RandomSeed             int64
	EmployeesPerDepartment int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	randomSeed, err := strconv.ParseInt(getEnv("SEED_RANDOM_SEED", "42"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_RANDOM_SEED: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "employee-directory"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "4567"),
			Version:               getEnv("APP_VERSION", "dev"),
			BaseURL:               getEnv("APP_BASE_URL", "http://localhost:4567"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Lock: LockConfig{
			TTLMillis:         getEnvAsInt("LOCK_TTL_MS", 5000),
			WaitTimeoutMillis: getEnvAsInt("LOCK_WAIT_TIMEOUT_MS", 3000),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Resource: ResourceConfig{
			DepartmentPageSize: getEnvAsInt("RESOURCE_DEPARTMENT_PAGE_SIZE", 20),
			EmployeePageSize:   getEnvAsInt("RESOURCE_EMPLOYEE_PAGE_SIZE", 1000),
			MaxPageSize:        getEnvAsInt("RESOURCE_MAX_PAGE_SIZE", 1000),
		},
		Seed: SeedConfig{
			Enabled:                getEnvAsBool("SEED_ENABLED", true),
			RandomSeed:             randomSeed,
			EmployeesPerDepartment: getEnvAsInt("SEED_EMPLOYEES_PER_DEPARTMENT", 12),
		},
	}

	if err := cfg.Resource.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// TTL returns how long a held lock survives without release.
func (l LockConfig) TTL() time.Duration {
	return time.Duration(l.TTLMillis) * time.Millisecond
}

// WaitTimeout returns how long a caller waits to obtain a lock.
func (l LockConfig) WaitTimeout() time.Duration {
	return time.Duration(l.WaitTimeoutMillis) * time.Millisecond
}

func (r ResourceConfig) validate() error {
	if r.MaxPageSize <= 0 {
		return fmt.Errorf("invalid RESOURCE_MAX_PAGE_SIZE: %d", r.MaxPageSize)
	}
	if r.DepartmentPageSize <= 0 || r.DepartmentPageSize > r.MaxPageSize {
		return fmt.Errorf("invalid RESOURCE_DEPARTMENT_PAGE_SIZE: %d", r.DepartmentPageSize)
	}
	if r.EmployeePageSize <= 0 || r.EmployeePageSize > r.MaxPageSize {
		return fmt.Errorf("invalid RESOURCE_EMPLOYEE_PAGE_SIZE: %d", r.EmployeePageSize)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
