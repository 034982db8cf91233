package http

import (
	"aegis-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/corpus")
	{
		api.GET("", h.ListEntities)
		api.GET("/stats", h.GetStats)
		api.GET("/export", h.ExportCorpus)
		api.PUT("", h.ReplaceCorpus)
		api.POST("/import", h.ImportCorpus)
		api.DELETE("", h.ResetCorpus)
	}
}
