package database

import (
	"fmt"
	"log"
	"time"

	"directory/config"
	"directory/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection, configures the connection pool
// and migrates the models
func InitDB() {
    dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable", config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

    var err error
    DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
    if err != nil {
        log.Fatal("failed to connect database: ", err)
    }

    sqlDB, err := DB.DB()
    if err != nil {
        log.Fatal("failed to access connection pool: ", err)
    }
    sqlDB.SetMaxOpenConns(20)
    sqlDB.SetMaxIdleConns(5)
    sqlDB.SetConnMaxLifetime(30 * time.Minute)

    err = DB.AutoMigrate(
        &models.User{},
        &models.Group{},
        &models.System{},
        &models.Permission{},
    )
    if err != nil {
        log.Fatal("failed to migrate database: ", err)
    }
}
