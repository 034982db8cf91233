package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	corpusHTTP "aegis-srv/internal/corpus/delivery/http"
	corpusRedis "aegis-srv/internal/corpus/repository/redis"
	corpusUsecase "aegis-srv/internal/corpus/usecase"
	"aegis-srv/internal/middleware"
)

func (srv *HTTPServer) setupCorpusDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := corpusRedis.New(srv.redisClient, srv.l)

	uc, err := corpusUsecase.New(repo, srv.l)
	if err != nil {
		return err
	}
	srv.corpusUC = uc

	handler := corpusHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Corpus domain registered")
	return nil
}
