package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"users-srv/internal/model"
	"users-srv/pkg/discord"
	"users-srv/pkg/encrypter"
	"users-srv/pkg/log"
	"users-srv/pkg/minio"
	"users-srv/pkg/token"

	"github.com/gin-gonic/gin"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer owns the gin engine and the dependencies its handlers are built from.
// New only wires and validates. Run maps the routes and serves.
type HTTPServer struct {
	gin             *gin.Engine
	l               log.Logger
	host            string
	port            int
	mode            string
	shutdownTimeout time.Duration
	allowedOrigins  []string

	db             *sql.DB
	acquireTimeout time.Duration
	storage        minio.Storage

	codec  *token.Codec[model.IdentityClaims]
	hasher encrypter.Hasher

	discord discord.IDiscord
}

type Config struct {
	Host            string
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string

	DB             *sql.DB
	AcquireTimeout time.Duration
	// Storage is nil when profile pictures are disabled.
	Storage minio.Storage

	Codec  *token.Codec[model.IdentityClaims]
	Hasher encrypter.Hasher

	// Discord is nil when bug reports are disabled.
	Discord discord.IDiscord
}

func New(l log.Logger, cfg Config) (*HTTPServer, error) {
	srv := &HTTPServer{
		l:               l,
		host:            cfg.Host,
		port:            cfg.Port,
		mode:            cfg.Mode,
		shutdownTimeout: cfg.ShutdownTimeout,
		allowedOrigins:  cfg.AllowedOrigins,

		db:             cfg.DB,
		acquireTimeout: cfg.AcquireTimeout,
		storage:        cfg.Storage,

		codec:  cfg.Codec,
		hasher: cfg.Hasher,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	gin.SetMode(srv.mode)
	srv.gin = gin.New()
	registerValidatorTagNames()

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port <= 0 {
		return errors.New("port is required")
	}
	switch srv.mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return errors.New("mode must be debug, release or test")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.codec == nil {
		return errors.New("token codec is required")
	}
	if srv.hasher == nil {
		return errors.New("password hasher is required")
	}
	return nil
}
