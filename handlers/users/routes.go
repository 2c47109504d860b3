package users

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to users
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	users := r.Group("/users")
	{
		users.GET("/", GetUsers)
		users.POST("/", CreateUser)
		users.GET("/:user_id", GetUser)
		users.PUT("/:user_id", UpdateUser)
		users.DELETE("/:user_id", DeleteUser)
		users.GET("/:user_id/groups", GetUserGroups)
	}
}
