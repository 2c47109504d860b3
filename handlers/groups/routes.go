package groups

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to groups
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	groups := r.Group("/groups")
	{
		groups.GET("/", GetGroups)
		groups.POST("/", CreateGroup)
		groups.GET("/:group_id", GetGroup)
		groups.PUT("/:group_id", UpdateGroup)
		groups.DELETE("/:group_id", DeleteGroup)
		groups.GET("/:group_id/systems", GetGroupSystems)
		groups.POST("/:group_id/systems/:system_id", AddGroupSystem)
		groups.DELETE("/:group_id/systems/:system_id", RemoveGroupSystem)
		groups.GET("/:group_id/permissions", GetGroupPermissions)
	}
}
