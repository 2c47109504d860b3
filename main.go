package main

import (
	"log"

	"directory/config"
	"directory/database"
	"directory/middleware"
	v1 "directory/routes/v1"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Directory API
// @version 1.0
// @description CRUD API for users, groups, systems and permissions with
// @description active-flag soft-delete semantics
// @BasePath /api/v1
func main() {
	config.LoadConfig()
	database.InitDB()

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	v1.Register(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Start background collection of runtime metrics
	middleware.UpdateSystemMetrics()

	log.Println("Listening on port " + config.APIPort)
	if err := r.Run(":" + config.APIPort); err != nil {
		log.Fatal("failed to start server: ", err)
	}
}
