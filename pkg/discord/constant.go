package discord

import (
	"errors"
	"time"
)

const (
	webhookBaseURL = "https://discord.com/api/webhooks"

	maxDescriptionLength = 4096
	maxFieldLength       = 1024

	colorError = 0xE74C3C
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

func defaultConfig() config {
	return config{
		timeout:    10 * time.Second,
		retryCount: 2,
		retryDelay: time.Second,
		username:   "Aegis Monitor",
	}
}
