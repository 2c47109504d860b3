package permissions

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

// parsePermissionID parses the permission_id path parameter
func parsePermissionID(c *gin.Context) (uint, bool) {
    id, err := strconv.ParseUint(c.Param("permission_id"), 10, 32)
    if err != nil {
        response.Error(c, http.StatusBadRequest, ErrInvalidPermissionID)
        return 0, false
    }
    return uint(id), true
}

// handleServiceError translates a service error into an HTTP response
func handleServiceError(c *gin.Context, err error, fallback string) {
    switch {
    case errors.Is(err, services.ErrPermissionNotFound):
        response.Error(c, http.StatusNotFound, err.Error())
    case errors.Is(err, services.ErrPermissionNameTaken):
        response.Error(c, http.StatusBadRequest, err.Error())
    default:
        response.Error(c, http.StatusInternalServerError, fallback)
    }
}

// GetPermissions retrieves all active permissions
// @Summary Get all permissions
// @Description Get all active permissions ordered by id
// @Tags Permissions
// @Accept json
// @Produce json
// @Success 200 {array} models.Permission
// @Failure 500 {object} map[string]string
// @Router /permissions [get]
func GetPermissions(c *gin.Context) {
    err := withTimeout(func(ctx context.Context) error {
        permissions, err := services.ListPermissions(database.DB.WithContext(ctx))
        if err != nil {
            return err
        }
        c.JSON(http.StatusOK, permissions)
        return nil
    })
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToGetPermissions)
    }
}

// GetPermission retrieves an active permission by ID
// @Summary Get a permission
// @Description Get an active permission by id
// @Tags Permissions
// @Accept json
// @Produce json
// @Param permission_id path int true "Permission ID"
// @Success 200 {object} models.Permission
// @Failure 404 {object} map[string]string
// @Router /permissions/{permission_id} [get]
func GetPermission(c *gin.Context) {
    id, ok := parsePermissionID(c)
    if !ok {
        return
    }

    err := withTimeout(func(ctx context.Context) error {
        permission, err := services.GetPermission(database.DB.WithContext(ctx), id)
        if err != nil {
            return err
        }
        c.JSON(http.StatusOK, permission)
        return nil
    })
    if err != nil {
        handleServiceError(c, err, ErrFailedToGetPermission)
    }
}

// CreatePermission creates a new permission
// @Summary Create a permission
// @Description Create a permission with a unique name
// @Tags Permissions
// @Accept json
// @Produce json
// @Param permission body SavePermissionRequest true "Permission to create"
// @Success 201 {object} models.Permission
// @Failure 400 {object} map[string]string
// @Router /permissions [post]
func CreatePermission(c *gin.Context) {
    var req SavePermissionRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    defer metrics.RecordDBOperation("create", "permissions", time.Now())

    err := withTimeout(func(ctx context.Context) error {
        permission, err := services.CreatePermission(database.DB.WithContext(ctx), req.Name, req.Description)
        if err != nil {
            return err
        }
        c.JSON(http.StatusCreated, permission)
        return nil
    })
    if err != nil {
        handleServiceError(c, err, ErrFailedToCreate)
    }
}

// UpdatePermission updates a permission's attributes
// @Summary Update a permission
// @Description Update the name and description of an active permission
// @Tags Permissions
// @Accept json
// @Produce json
// @Param permission_id path int true "Permission ID"
// @Param permission body SavePermissionRequest true "Permission information to update"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /permissions/{permission_id} [put]
func UpdatePermission(c *gin.Context) {
    id, ok := parsePermissionID(c)
    if !ok {
        return
    }

    var req SavePermissionRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    defer metrics.RecordDBOperation("update", "permissions", time.Now())

    err := withTimeout(func(ctx context.Context) error {
        return services.UpdatePermission(database.DB.WithContext(ctx), id, req.Name, req.Description)
    })
    if err != nil {
        handleServiceError(c, err, ErrFailedToUpdate)
        return
    }
    c.Status(http.StatusNoContent)
}

// DeletePermission deletes a permission, keeping the row as inactive while group links remain
// @Summary Delete a permission
// @Description Soft-delete a permission that is still attached to groups, remove it outright otherwise
// @Tags Permissions
// @Accept json
// @Produce json
// @Param permission_id path int true "Permission ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /permissions/{permission_id} [delete]
func DeletePermission(c *gin.Context) {
    id, ok := parsePermissionID(c)
    if !ok {
        return
    }

    defer metrics.RecordDBOperation("delete", "permissions", time.Now())

    err := withTimeout(func(ctx context.Context) error {
        return services.DeletePermission(database.DB.WithContext(ctx), id)
    })
    if err != nil {
        handleServiceError(c, err, ErrFailedToDelete)
        return
    }
    c.Status(http.StatusNoContent)
}
