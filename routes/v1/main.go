package v1

import (
	"directory/handlers/groups"
	"directory/handlers/permissions"
	"directory/handlers/systems"
	"directory/handlers/users"
	"directory/middleware"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine) {
    v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(10000, 1500)
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	users.RegisterRoutes(v1)
	groups.RegisterRoutes(v1)
	systems.RegisterRoutes(v1)
	permissions.RegisterRoutes(v1)

	// Register metrics endpoint
	RegisterMetricsRoutes(v1)
}
