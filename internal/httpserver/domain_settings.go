package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"aegis-srv/internal/middleware"
	settingsHTTP "aegis-srv/internal/settings/delivery/http"
	settingsRedis "aegis-srv/internal/settings/repository/redis"
	settingsUsecase "aegis-srv/internal/settings/usecase"
)

func (srv *HTTPServer) setupSettingsDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := settingsRedis.New(srv.redisClient, srv.l)

	uc := settingsUsecase.New(repo, srv.l)
	srv.settingsUC = uc

	handler := settingsHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Settings domain registered")
	return nil
}
