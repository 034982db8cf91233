package httpserver

import (
	"context"
	"net/http"

	"aegis-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Aegis monitoring API"
	HealthVersion = "1.0.0"
	ServiceName   = "aegis-srv"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

type dependencyCheck struct {
	name  string
	check func(ctx context.Context) error
}

func (srv *HTTPServer) dependencyChecks() []dependencyCheck {
	return []dependencyCheck{
		{"database", func(ctx context.Context) error { return srv.postgresDB.PingContext(ctx) }},
		{"redis", func(ctx context.Context) error { return srv.redisClient.Ping(ctx) }},
		{"storage", func(ctx context.Context) error { return srv.minioClient.HealthCheck(ctx) }},
		{"kafka", func(context.Context) error { return srv.kafkaProducer.HealthCheck() }},
	}
}

// readyCheck handles readiness check requests (Postgres, Redis, MinIO and Kafka).
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is unavailable"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	body := gin.H{
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
	for _, dep := range srv.dependencyChecks() {
		if err := dep.check(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: %s unavailable: %v", dep.name, err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "not ready",
				"message": dep.name + " connection failed",
				"error":   err.Error(),
			})
			return
		}
		body[dep.name] = "connected"
	}

	body["status"] = "ready"
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
