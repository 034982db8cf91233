package discord

import (
	"context"
	"net/http"

	"aegis-srv/pkg/log"
)

// IDiscord reports unexpected API failures to an ops webhook.
type IDiscord interface {
	ReportBug(ctx context.Context, message string) error
	Close() error
}

// DiscordWebhook identifies the webhook by the two path segments Discord hands out.
type DiscordWebhook struct {
	ID    string
	Token string
}

func New(l log.Logger, webhook *DiscordWebhook) (IDiscord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	cfg := defaultConfig()
	return &discordImpl{
		l:       l,
		webhook: *webhook,
		config:  cfg,
		client:  &http.Client{Timeout: cfg.timeout},
		baseURL: webhookBaseURL,
	}, nil
}
