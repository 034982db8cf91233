package http

import (
	"aegis-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/reports")
	{
		api.POST("", h.GenerateReport)
		api.POST("/preview", h.PreviewReport)
		api.GET("", h.ListReports)
		api.GET("/:report_id", h.GetReport)
		api.GET("/:report_id/download", h.DownloadReport)
	}
}
