package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets, backend URL)
// - default: Values common across all environments (timezone, timeout, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Log     LogConfig
	Session SessionConfig
	Cookie  CookieConfig
	Backend BackendConfig
	Store   StoreConfig
	Redis   RedisConfig
	DB      DBConfig
	Events  EventsConfig
	Admin   AdminConfig
	Catalog CatalogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Admin-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type SessionConfig struct {
	Secret string        `envconfig:"SESSION_SECRET" required:"true"`
	TTL    time.Duration `envconfig:"SESSION_TTL" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type BackendConfig struct {
	BaseURL     string        `envconfig:"BACKEND_BASE_URL" default:"http://localhost:5000"`
	Timeout     time.Duration `envconfig:"BACKEND_TIMEOUT" default:"30s"`
	WaitHealthy time.Duration `envconfig:"BACKEND_WAIT_HEALTHY" default:"0s"`
}

// StoreConfig selects the hand-off store: memory, redis or postgres.
type StoreConfig struct {
	Backend string        `envconfig:"STORE_BACKEND" default:"memory"`
	TTL     time.Duration `envconfig:"STORE_TTL" default:"24h"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"ticket_monarch"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

// EventsConfig enables the funnel event publisher when AMQPURL is set.
type EventsConfig struct {
	AMQPURL string `envconfig:"EVENTS_AMQP_URL" default:""`
	Queue   string `envconfig:"EVENTS_QUEUE" default:"funnel.events"`
}

// AdminConfig holds the bcrypt hash of the admin key. Admin routes are disabled when empty.
type AdminConfig struct {
	KeyHash string `envconfig:"ADMIN_KEY_HASH" default:""`
}

type CatalogConfig struct {
	Path string `envconfig:"CATALOG_PATH" default:""`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	switch cfg.Store.Backend {
	case "memory", "redis", "postgres":
	default:
		return Config{}, fmt.Errorf("unsupported STORE_BACKEND %q", cfg.Store.Backend)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Session: SessionConfig{
			Secret: "test-session-secret",
			TTL:    time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Backend: BackendConfig{
			BaseURL: "http://localhost:5000",
			Timeout: 5 * time.Second,
		},
		Store: StoreConfig{
			Backend: "memory",
			TTL:     time.Hour,
		},
		Events: EventsConfig{
			Queue: "funnel.events",
		},
	}
}
