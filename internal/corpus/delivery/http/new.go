package http

import (
	"aegis-srv/internal/corpus"
	"aegis-srv/internal/middleware"
	"aegis-srv/pkg/discord"
	"aegis-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      corpus.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc corpus.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}
