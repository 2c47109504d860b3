package systems

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to systems
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	systems := r.Group("/systems")
	{
		systems.GET("/", GetSystems)
		systems.POST("/", CreateSystem)
		systems.GET("/:system_id", GetSystem)
		systems.PUT("/:system_id", UpdateSystem)
		systems.DELETE("/:system_id", DeleteSystem)
		systems.GET("/:system_id/groups", GetSystemGroups)
	}
}
