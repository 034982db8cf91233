package http

import (
	"aegis-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/settings")
	{
		api.GET("", h.GetSettings)
		api.PUT("", h.UpdateSettings)
		api.DELETE("", h.ResetSettings)
	}
}
