package permissions

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to permissions
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	permissions := r.Group("/permissions")
	{
		permissions.GET("/", GetPermissions)
		permissions.POST("/", CreatePermission)
		permissions.GET("/:permission_id", GetPermission)
		permissions.PUT("/:permission_id", UpdatePermission)
		permissions.DELETE("/:permission_id", DeletePermission)
	}
}
