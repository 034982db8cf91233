package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// ReportBug posts message as a red embed tagged with the reporting host.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	host, _ := os.Hostname()
	e := embed{
		Title:       "Unexpected error",
		Description: fmt.Sprintf("```%s```", truncate(message, maxDescriptionLength-6)),
		Color:       colorError,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	if host != "" {
		e.Fields = append(e.Fields, embedField{Name: "Host", Value: truncate(host, maxFieldLength), Inline: true})
	}
	return d.send(ctx, webhookPayload{Username: d.config.username, Embeds: []embed{e}})
}

func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

// send retries on transport errors, 5xx and 429. Other 4xx fail immediately.
func (d *discordImpl) send(ctx context.Context, payload webhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord: marshal payload: %w", err)
	}
	url := fmt.Sprintf("%s/%s/%s", d.baseURL, d.webhook.ID, d.webhook.Token)

	var lastErr error
	for attempt := 0; attempt <= d.config.retryCount; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d.config.retryDelay):
			}
		}

		retry, err := d.post(ctx, url, body)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retry {
			break
		}
	}

	d.l.Warnf(ctx, "pkg.discord.send: %v", lastErr)
	return lastErr
}

func (d *discordImpl) post(ctx context.Context, url string, body []byte) (retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("discord: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return true, fmt.Errorf("discord: send webhook: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode < 300 {
		return false, nil
	}
	retry = resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests
	return retry, fmt.Errorf("discord: webhook returned status %d", resp.StatusCode)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
