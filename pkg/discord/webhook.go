package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf("%s/%s/%s", d.cfg.BaseURL, d.cfg.WebhookID, d.cfg.WebhookToken)
}

// ReportBug sends message as a red embed, truncated to the embed description limit.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	if len(message) > MaxDescriptionLen-6 {
		message = message[:MaxDescriptionLen-9] + "..."
	}
	err := d.sendWithRetry(ctx, &webhookPayload{
		Username: DefaultUsername,
		Embeds: []embed{{
			Title:       ReportBugTitle,
			Description: "```" + message + "```",
			Color:       ColorError,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		}},
	})
	if err != nil && d.l != nil {
		d.l.Errorf(ctx, "pkg.discord.ReportBug.sendWithRetry: %v", err)
	}
	return err
}

func (d *discordImpl) sendWithRetry(ctx context.Context, payload *webhookPayload) error {
	var lastErr error
	for attempt := 0; attempt <= d.cfg.RetryCount; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d.cfg.RetryDelay):
			}
		}
		err := d.sendRequest(ctx, payload)
		if err == nil {
			return nil
		}
		lastErr = err
		if d.l != nil {
			d.l.Warnf(ctx, "pkg.discord.sendWithRetry: attempt %d failed: %v", attempt+1, err)
		}
	}
	return fmt.Errorf("discord: failed after %d attempts: %w", d.cfg.RetryCount+1, lastErr)
}

func (d *discordImpl) sendRequest(ctx context.Context, payload *webhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, string(msg))
	}
	return nil
}
