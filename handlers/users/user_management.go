package users

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"directory/database"
	"directory/metrics"
	"directory/services"
	"directory/utils/response"

	"github.com/gin-gonic/gin"
)

const (
    // defaultQueryTimeout defines the standard timeout for database operations
    defaultQueryTimeout = 5 * time.Second
)

// withTimeout executes a database function with a timeout context
func withTimeout(operation func(ctx context.Context) error) error {
    ctx, cancel := context.WithTimeout(context.Background(), defaultQueryTimeout)
    defer cancel()
    return operation(ctx)
}

// parseUserID parses the user_id path parameter
func parseUserID(c *gin.Context) (uint, bool) {
    id, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
    if err != nil {
        response.Error(c, http.StatusBadRequest, ErrInvalidUserID)
        return 0, false
    }
    return uint(id), true
}

// handleServiceError translates a service error into an HTTP response
func handleServiceError(c *gin.Context, err error, fallback string) {
    var invalidRef *services.InvalidReferenceError
    switch {
    case errors.Is(err, services.ErrUserNotFound):
        response.Error(c, http.StatusNotFound, err.Error())
    case errors.Is(err, services.ErrEmailTaken):
        response.Error(c, http.StatusBadRequest, err.Error())
    case errors.As(err, &invalidRef):
        response.Error(c, http.StatusBadRequest, invalidRef.Error())
    default:
        response.Error(c, http.StatusInternalServerError, fallback)
    }
}

// GetUsers retrieves all active users
// @Summary Get all users
// @Description Get all active users with their groups and the systems and permissions of those groups
// @Tags Users
// @Accept json
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} map[string]string
// @Router /users [get]
func GetUsers(c *gin.Context) {
    err := withTimeout(func(ctx context.Context) error {
        users, err := services.ListUsers(database.DB.WithContext(ctx))
        if err != nil {
            return err
        }
        c.JSON(http.StatusOK, users)
        return nil
    })
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToGetUsers)
    }
}

// GetUser retrieves an active user by ID
// @Summary Get a user
// @Description Get an active user with its groups fully resolved
// @Tags Users
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} map[string]string
// @Router /users/{user_id} [get]
func GetUser(c *gin.Context) {
    id, ok := parseUserID(c)
    if !ok {
        return
    }

    err := withTimeout(func(ctx context.Context) error {
        user, err := services.GetUser(database.DB.WithContext(ctx), id)
        if err != nil {
            return err
        }
        c.JSON(http.StatusOK, user)
        return nil
    })
    if err != nil {
        handleServiceError(c, err, ErrFailedToGetUser)
    }
}

// CreateUser creates a new user
// @Summary Create a user
// @Description Create a user with a unique email, linked to the given groups
// @Tags Users
// @Accept json
// @Produce json
// @Param user body SaveUserRequest true "User to create"
// @Success 201 {object} models.User
// @Failure 400 {object} map[string]string
// @Router /users [post]
func CreateUser(c *gin.Context) {
    var req SaveUserRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    defer metrics.RecordDBOperation("create", "users", time.Now())

    err := withTimeout(func(ctx context.Context) error {
        user, err := services.CreateUser(database.DB.WithContext(ctx), req.Name, req.Email, req.GroupIDs)
        if err != nil {
            return err
        }
        c.JSON(http.StatusCreated, user)
        return nil
    })
    if err != nil {
        handleServiceError(c, err, ErrFailedToCreate)
    }
}

// UpdateUser updates a user's attributes and group membership
// @Summary Update a user
// @Description Update a user's name, email and full group membership; groups absent from group_ids are unlinked
// @Tags Users
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param user body SaveUserRequest true "User information to update"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{user_id} [put]
func UpdateUser(c *gin.Context) {
    id, ok := parseUserID(c)
    if !ok {
        return
    }

    var req SaveUserRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    defer metrics.RecordDBOperation("update", "users", time.Now())

    err := withTimeout(func(ctx context.Context) error {
        return services.UpdateUser(database.DB.WithContext(ctx), id, req.Name, req.Email, req.GroupIDs)
    })
    if err != nil {
        handleServiceError(c, err, ErrFailedToUpdate)
        return
    }
    c.Status(http.StatusNoContent)
}

// DeleteUser deletes a user, keeping the row as inactive while group links remain
// @Summary Delete a user
// @Description Soft-delete a user that still belongs to groups, remove it outright otherwise
// @Tags Users
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /users/{user_id} [delete]
func DeleteUser(c *gin.Context) {
    id, ok := parseUserID(c)
    if !ok {
        return
    }

    defer metrics.RecordDBOperation("delete", "users", time.Now())

    err := withTimeout(func(ctx context.Context) error {
        return services.DeleteUser(database.DB.WithContext(ctx), id)
    })
    if err != nil {
        handleServiceError(c, err, ErrFailedToDelete)
        return
    }
    c.Status(http.StatusNoContent)
}
