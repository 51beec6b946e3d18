package main

import (
	"context"
	"fmt"
	"os"

	"users-srv/config"
	configMinio "users-srv/config/minio"
	"users-srv/config/postgre"
	"users-srv/internal/httpserver"
	"users-srv/internal/model"
	"users-srv/pkg/discord"
	"users-srv/pkg/encrypter"
	"users-srv/pkg/log"
	"users-srv/pkg/minio"
	"users-srv/pkg/offload"
	"users-srv/pkg/token"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	// Offload pool shared by token signing and password hashing
	pool := offload.New(cfg.Offload.Workers)
	logger.Infof(ctx, "Offload pool started with %d workers", pool.Size())
	defer pool.Close()

	codec, err := token.New[model.IdentityClaims](token.Config{
		Secret: cfg.Token.SigningSecret,
		TTL:    token.ParseTTL(cfg.Token.TTLSeconds),
		Pool:   pool,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize token codec: %w", err)
	}

	hasher, err := encrypter.New(encrypter.Config{
		Algorithm:  cfg.Password.Algorithm,
		BcryptCost: cfg.Password.BcryptCost,
		Argon2: encrypter.Argon2Params{
			Memory:     cfg.Password.Argon2Memory,
			Iterations: cfg.Password.Argon2Iterations,
			Threads:    cfg.Password.Argon2Threads,
		},
	}, pool)
	if err != nil {
		return fmt.Errorf("failed to initialize password hasher: %w", err)
	}

	// Initialize PostgreSQL
	db, err := postgre.Connect(ctx, logger, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer postgre.Disconnect(ctx, logger)

	// Initialize MinIO
	var storage minio.Storage
	if cfg.MinIO.Enabled {
		s, err := configMinio.Connect(ctx, logger, cfg.MinIO)
		if err != nil {
			return fmt.Errorf("failed to connect to MinIO: %w", err)
		}
		defer s.Close()
		storage = s
	} else {
		logger.Info(ctx, "MinIO disabled, profile picture uploads are off")
	}

	// Initialize Discord
	var discordClient discord.IDiscord
	if cfg.Discord.Enabled() {
		d, err := discord.New(logger, discord.Config{
			WebhookID:    cfg.Discord.WebhookID,
			WebhookToken: cfg.Discord.WebhookToken,
			RetryCount:   discord.DefaultRetryCount,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize Discord: %w", err)
		}
		defer d.Close()
		discordClient = d
	}

	// Initialize HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Host:            cfg.HTTPServer.Host,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		AllowedOrigins:  cfg.HTTPServer.AllowedOrigins,

		DB:             db,
		AcquireTimeout: cfg.Postgres.AcquireTimeout,
		Storage:        storage,

		Codec:  codec,
		Hasher: hasher,

		Discord: discordClient,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	return srv.Run()
}
