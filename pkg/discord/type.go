package discord

import (
	"net/http"
	"time"

	"aegis-srv/pkg/log"
)

type config struct {
	timeout    time.Duration
	retryCount int
	retryDelay time.Duration
	username   string
}

type discordImpl struct {
	l       log.Logger
	webhook DiscordWebhook
	config  config
	client  *http.Client
	baseURL string
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Fields      []embedField `json:"fields,omitempty"`
}

type webhookPayload struct {
	Username string  `json:"username,omitempty"`
	Embeds   []embed `json:"embeds,omitempty"`
}
