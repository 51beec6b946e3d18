package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Postgres PostgresConfig
	MinIO    MinIOConfig

	Token    TokenConfig
	Password PasswordConfig
	Offload  OffloadConfig

	Discord DiscordConfig
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host            string        `env:"HOST" envDefault:"0.0.0.0"`
	Port            int           `env:"PORT" envDefault:"8080"`
	Mode            string        `env:"API_MODE" envDefault:"release"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"false"`
}

// PostgresConfig is the configuration for the users database
type PostgresConfig struct {
	Driver   string `env:"POSTGRES_DRIVER" envDefault:"postgres"`
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB" envDefault:"users"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`

	MaxOpenConns   int           `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"200"`
	MaxIdleConns   int           `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"25"`
	AcquireTimeout time.Duration `env:"POSTGRES_ACQUIRE_TIMEOUT" envDefault:"3s"`
}

// MinIOConfig is the configuration for profile picture storage
type MinIOConfig struct {
	Enabled   bool   `env:"MINIO_ENABLED" envDefault:"false"`
	Endpoint  string `env:"MINIO_ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"MINIO_ACCESS_KEY"`
	SecretKey string `env:"MINIO_SECRET_KEY"`
	UseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	Region    string `env:"MINIO_REGION" envDefault:"us-east-1"`
	Bucket    string `env:"MINIO_BUCKET" envDefault:"users"`
	PublicURL string `env:"MINIO_PUBLIC_URL"`
}

// TokenConfig is the configuration for issued bearer tokens.
// TTLSeconds stays a string so that a bad value degrades to the default TTL instead of failing startup.
type TokenConfig struct {
	SigningSecret string `env:"SIGNING_SECRET,required,notEmpty"`
	TTLSeconds    string `env:"TOKEN_TTL_SECONDS"`
}

// PasswordConfig is the configuration for password hashing.
// The argon2id defaults match hashes already stored in the users table.
type PasswordConfig struct {
	Algorithm        string `env:"PASSWORD_HASHER" envDefault:"argon2id"`
	BcryptCost       int    `env:"BCRYPT_COST" envDefault:"10"`
	Argon2Memory     uint32 `env:"ARGON2_MEMORY" envDefault:"19456"`
	Argon2Iterations uint32 `env:"ARGON2_ITERATIONS" envDefault:"2"`
	Argon2Threads    uint8  `env:"ARGON2_THREADS" envDefault:"1"`
}

// OffloadConfig bounds the pool running hashing and signing. 0 means GOMAXPROCS.
type OffloadConfig struct {
	Workers int `env:"OFFLOAD_WORKERS" envDefault:"0"`
}

// DiscordConfig is the configuration for Discord webhook notifications
type DiscordConfig struct {
	WebhookID    string `env:"DISCORD_WEBHOOK_ID"`
	WebhookToken string `env:"DISCORD_WEBHOOK_TOKEN"`
}

// Enabled reports whether both webhook parts are set.
func (d DiscordConfig) Enabled() bool {
	return d.WebhookID != "" && d.WebhookToken != ""
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
