package discord

import (
	"net/http"
	"time"

	"users-srv/pkg/log"
)

// Config identifies the webhook. BaseURL is only overridden in tests.
type Config struct {
	WebhookID    string
	WebhookToken string
	BaseURL      string
	Timeout      time.Duration
	RetryCount   int
	RetryDelay   time.Duration
}

type discordImpl struct {
	l      log.Logger
	cfg    Config
	client *http.Client
}

type embed struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Color       int    `json:"color,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"`
}

type webhookPayload struct {
	Username string  `json:"username,omitempty"`
	Embeds   []embed `json:"embeds,omitempty"`
}
