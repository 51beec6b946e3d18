package discord

import (
	"context"
	"errors"
	"net/http"
	"time"

	"users-srv/pkg/log"
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// IDiscord posts internal failure reports to a Discord channel.
type IDiscord interface {
	ReportBug(ctx context.Context, message string) error
	Close() error
}

func New(l log.Logger, cfg Config) (IDiscord, error) {
	if cfg.WebhookID == "" || cfg.WebhookToken == "" {
		return nil, errWebhookRequired
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RetryCount < 0 {
		cfg.RetryCount = DefaultRetryCount
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}

	return &discordImpl{
		l:   l,
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		},
	}, nil
}

func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}
