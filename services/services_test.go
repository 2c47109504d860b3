package services

import (
	"testing"

	"directory/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the directory schema.
// The pool is capped at one connection so the in-memory store is shared
// across transactions.
func newTestDB(t *testing.T) *gorm.DB {
    t.Helper()

    db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
        Logger: logger.Default.LogMode(logger.Silent),
    })
    require.NoError(t, err)

    sqlDB, err := db.DB()
    require.NoError(t, err)
    sqlDB.SetMaxOpenConns(1)

    require.NoError(t, db.AutoMigrate(
        &models.User{},
        &models.Group{},
        &models.System{},
        &models.Permission{},
    ))
    return db
}

func mustCreateGroup(t *testing.T, db *gorm.DB, name string) *models.Group {
    t.Helper()
    group, err := CreateGroup(db, name, "", nil, nil)
    require.NoError(t, err)
    return group
}

func mustCreateSystem(t *testing.T, db *gorm.DB, name string) *models.System {
    t.Helper()
    system, err := CreateSystem(db, name)
    require.NoError(t, err)
    return system
}

func mustCreatePermission(t *testing.T, db *gorm.DB, name string) *models.Permission {
    t.Helper()
    permission, err := CreatePermission(db, name, "")
    require.NoError(t, err)
    return permission
}

func mustCreateUser(t *testing.T, db *gorm.DB, name, email string, groupIDs []uint) *models.User {
    t.Helper()
    user, err := CreateUser(db, name, email, groupIDs)
    require.NoError(t, err)
    return user
}
