package attendance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	attendances := r.Group("/attendance")
	{
		attendances.GET("", h.GetAll)
		attendances.POST("", h.Mark)
	}
}
