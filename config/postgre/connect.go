package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"sync"
	"time"

	"users-srv/config"
	"users-srv/pkg/log"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx"
	_ "github.com/lib/pq"              // registers "postgres"
)

const (
	// defaultConnectTimeout is the maximum time to wait for the first ping
	defaultConnectTimeout  = 5 * time.Second
	defaultMaxIdleConns    = 25
	defaultMaxOpenConns    = 200
	defaultConnMaxLifetime = 30 * time.Minute
	defaultConnMaxIdleTime = 5 * time.Minute
)

const (
	DriverPQ  = "postgres"
	DriverPGX = "pgx"
)

var (
	instance *sql.DB
	mu       sync.Mutex
)

// DSN builds a postgres:// URL understood by both drivers. Credentials are percent-encoded.
func DSN(cfg config.PostgresConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.DBName,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}

func driverName(driver string) (string, error) {
	switch driver {
	case "", DriverPQ:
		return DriverPQ, nil
	case DriverPGX:
		return DriverPGX, nil
	default:
		return "", fmt.Errorf("unsupported POSTGRES_DRIVER %q", driver)
	}
}

// Connect opens the shared pool and pings it. Later calls return the same pool.
func Connect(ctx context.Context, l log.Logger, cfg config.PostgresConfig) (*sql.DB, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	driver, err := driverName(cfg.Driver)
	if err != nil {
		return nil, err
	}

	l.Infof(ctx, "config.postgre.Connect: connecting to %s:%d/%s with %s", cfg.Host, cfg.Port, cfg.DBName, driver)

	db, err := sql.Open(driver, DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}

	maxOpen, maxIdle := cfg.MaxOpenConns, cfg.MaxIdleConns
	if maxOpen <= 0 {
		maxOpen = defaultMaxOpenConns
	}
	if maxIdle <= 0 {
		maxIdle = defaultMaxIdleConns
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(defaultConnMaxLifetime)
	db.SetConnMaxIdleTime(defaultConnMaxIdleTime)

	connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()
	if err := db.PingContext(connectCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	instance = db
	l.Infof(ctx, "config.postgre.Connect: connected to %s:%d/%s", cfg.Host, cfg.Port, cfg.DBName)
	return instance, nil
}

// Disconnect closes the shared pool so Connect can open a new one.
func Disconnect(ctx context.Context, l log.Logger) error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	if err := instance.Close(); err != nil {
		l.Errorf(ctx, "config.postgre.Disconnect: %v", err)
		return fmt.Errorf("failed to close PostgreSQL connection: %w", err)
	}
	instance = nil
	return nil
}
