package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Mail   MailConfig
	Redis  RedisConfig
	Notify NotifyConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	// Base URL of the SPA; verification and reset links point here.
	PublicURL string `envconfig:"APP_PUBLIC_URL" default:"http://localhost:5173"`
	// Offer windows and coupon expiry are calendar dates in this zone.
	TimeZone string `envconfig:"APP_TIMEZONE" default:"America/El_Salvador"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/El_Salvador"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/El_Salvador"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-21600"` // -6*60*60
}

type JWTConfig struct {
	Secret        string `envconfig:"JWT_SECRET" required:"true"`
	Duration      string `envconfig:"JWT_EXPIRES_IN" default:"8h"`
	ResetSecret   string `envconfig:"RESET_TOKEN_SECRET"`
	ResetDuration string `envconfig:"RESET_TOKEN_EXPIRES_IN" default:"15m"`
}

// MailConfig configures the HTTP mail API. An empty APIURL logs messages instead of sending them.
type MailConfig struct {
	APIURL     string        `envconfig:"MAIL_API_URL"`
	APIKey     string        `envconfig:"MAIL_API_KEY"`
	From       string        `envconfig:"MAIL_FROM" default:"CuponX <no-reply@cuponx.local>"`
	Timeout    time.Duration `envconfig:"MAIL_TIMEOUT" default:"10s"`
	RetryCount int           `envconfig:"MAIL_RETRY_COUNT" default:"2"`
}

// RedisConfig enables the domain event stream when Addr is set.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	Stream   string `envconfig:"REDIS_EVENTS_STREAM" default:"cuponx:events"`
}

type NotifyConfig struct {
	Workers   int           `envconfig:"NOTIFY_WORKERS" default:"2"`
	QueueSize int           `envconfig:"NOTIFY_QUEUE_SIZE" default:"100"`
	Timeout   time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"15s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c JWTConfig) ResetSigningSecret() string {
	if c.ResetSecret != "" {
		return c.ResetSecret
	}
	return c.Secret
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:      "8889", // Test port
			PublicURL: "http://localhost:5173",
			TimeZone:  "America/El_Salvador",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/El_Salvador",
			MaxConns: 20,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/El_Salvador",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -21600,
		},
		JWT: JWTConfig{
			Secret:        "test-session-secret",
			Duration:      "8h",
			ResetSecret:   "test-reset-secret",
			ResetDuration: "15m",
		},
		Mail: MailConfig{
			From:    "CuponX <no-reply@cuponx.local>",
			Timeout: 2 * time.Second,
		},
		Redis: RedisConfig{
			Stream: "cuponx:events",
		},
		Notify: NotifyConfig{
			Workers:   1,
			QueueSize: 16,
			Timeout:   2 * time.Second,
		},
	}
}
