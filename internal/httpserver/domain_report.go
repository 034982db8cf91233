package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"aegis-srv/internal/middleware"
	reportHTTP "aegis-srv/internal/report/delivery/http"
	"aegis-srv/internal/report/generator"
	reportPostgre "aegis-srv/internal/report/repository/postgre"
	reportUsecase "aegis-srv/internal/report/usecase"
)

func (srv *HTTPServer) setupReportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := reportPostgre.New(srv.postgresDB, srv.l)

	gen := generator.Select(srv.l, srv.composer, srv.reportConfig.LLMProvider, srv.llm, generator.WithMetrics(srv.metrics))

	uc := reportUsecase.New(repo, srv.scanUC, gen, srv.minioClient, srv.metrics, srv.l, reportUsecase.Config{
		ReportBucket:   srv.reportBucket,
		ReuseWindow:    srv.reportConfig.ReuseWindow,
		StaleAfter:     srv.reportConfig.StaleAfter,
		DownloadExpiry: srv.reportConfig.DownloadExpiry,
	})

	handler := reportHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Report domain registered (generator: %s)", gen.Name())
	return nil
}
