package httpserver

import (
	"context"
	"fmt"

	"aegis-srv/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers(ctx context.Context) error {
	mw := middleware.New(srv.l, srv.metrics, srv.discord)

	srv.registerMiddlewares(ctx, mw)
	srv.registerSystemRoutes()

	root := srv.gin.Group("")

	// Corpus and settings come first: scans read both.
	if err := srv.setupCorpusDomain(ctx, root, mw); err != nil {
		return fmt.Errorf("corpus domain: %w", err)
	}
	if err := srv.setupSettingsDomain(ctx, root, mw); err != nil {
		return fmt.Errorf("settings domain: %w", err)
	}
	if err := srv.setupScanDomain(ctx, root, mw); err != nil {
		return fmt.Errorf("scan domain: %w", err)
	}
	if err := srv.setupReportDomain(ctx, root, mw); err != nil {
		return fmt.Errorf("report domain: %w", err)
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(ctx context.Context, mw middleware.Middleware) {
	srv.gin.Use(mw.RequestID(), mw.Metrics(), mw.Recovery())

	corsConfig := middleware.DefaultCORSConfig(srv.environment, srv.corsOrigins)
	srv.gin.Use(middleware.CORS(corsConfig))

	if srv.environment == "production" {
		srv.l.Infof(ctx, "CORS mode: production (origins: %v)", corsConfig.AllowedOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (origins: %v)", srv.environment, corsConfig.AllowedOrigins)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
