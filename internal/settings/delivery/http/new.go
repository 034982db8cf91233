package http

import (
	"aegis-srv/internal/middleware"
	"aegis-srv/internal/settings"
	"aegis-srv/pkg/discord"
	"aegis-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      settings.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc settings.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}
