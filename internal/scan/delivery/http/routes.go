package http

import (
	"aegis-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/scans")
	{
		api.POST("", h.RunScan)
		api.POST("/analyze", h.AnalyzeVideo)
		api.GET("/history", h.ListHistory)
		api.GET("/:scan_id", h.GetScan)
		api.POST("/:scan_id/takedown/:item_id", h.Takedown)
	}
}
