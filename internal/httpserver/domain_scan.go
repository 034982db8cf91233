package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"aegis-srv/internal/middleware"
	"aegis-srv/internal/network"
	scanHTTP "aegis-srv/internal/scan/delivery/http"
	scanProducer "aegis-srv/internal/scan/delivery/kafka/producer"
	scanRedis "aegis-srv/internal/scan/repository/redis"
	"aegis-srv/internal/scan/synthesizer"
	scanUsecase "aegis-srv/internal/scan/usecase"
)

func (srv *HTTPServer) setupScanDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := scanRedis.New(srv.redisClient, srv.l)

	builder := network.New(srv.sampler, network.WithMaxEdges(srv.scanConfig.MaxEdges))
	synth := synthesizer.New(srv.sampler, builder)

	uc := scanUsecase.New(
		repo,
		synth,
		srv.corpusUC,
		srv.settingsUC,
		srv.analyzerClient,
		scanProducer.New(srv.l, srv.kafkaProducer),
		srv.metrics,
		srv.l,
		scanUsecase.Config{
			ResultTTL:    srv.scanConfig.ResultTTL,
			HistoryLimit: int64(srv.scanConfig.HistoryLimit),
		},
	)
	srv.scanUC = uc

	handler := scanHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	if srv.analyzerClient == nil {
		srv.l.Warnf(ctx, "Analyzer not configured, POST /api/v1/scans/analyze will return 503")
	}
	srv.l.Infof(ctx, "Scan domain registered")
	return nil
}
