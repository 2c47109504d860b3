package groups

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

// parseGroupID parses the group_id path parameter
func parseGroupID(c *gin.Context) (uint, bool) {
    id, err := strconv.ParseUint(c.Param("group_id"), 10, 32)
    if err != nil {
        response.Error(c, http.StatusBadRequest, ErrInvalidGroupID)
        return 0, false
    }
    return uint(id), true
}

// handleServiceError translates a service error into an HTTP response
func handleServiceError(c *gin.Context, err error, fallback string) {
    var invalidRef *services.InvalidReferenceError
    switch {
    case errors.Is(err, services.ErrGroupNotFound), errors.Is(err, services.ErrSystemNotFound):
        response.Error(c, http.StatusNotFound, err.Error())
    case errors.Is(err, services.ErrGroupNameTaken):
        response.Error(c, http.StatusBadRequest, err.Error())
    case errors.As(err, &invalidRef):
        response.Error(c, http.StatusBadRequest, invalidRef.Error())
    default:
        response.Error(c, http.StatusInternalServerError, fallback)
    }
}

// GetGroups retrieves all active groups
// @Summary Get all groups
// @Description Get all active groups with their systems and permissions
// @Tags Groups
// @Accept json
// @Produce json
// @Success 200 {array} models.Group
// @Failure 500 {object} map[string]string
// @Router /groups [get]
func GetGroups(c *gin.Context) {
    err := withTimeout(func(ctx context.Context) error {
        groups, err := services.ListGroups(database.DB.WithContext(ctx))
        if err != nil {
            return err
        }
        c.JSON(http.StatusOK, groups)
        return nil
    })
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToGetGroups)
    }
}

// GetGroup retrieves an active group by ID
// @Summary Get a group
// @Description Get an active group with its systems and permissions
// @Tags Groups
// @Accept json
// @Produce json
// @Param group_id path int true "Group ID"
// @Success 200 {object} models.Group
// @Failure 404 {object} map[string]string
// @Router /groups/{group_id} [get]
func GetGroup(c *gin.Context) {
    id, ok := parseGroupID(c)
    if !ok {
        return
    }

    err := withTimeout(func(ctx context.Context) error {
        group, err := services.GetGroup(database.DB.WithContext(ctx), id)
        if err != nil {
            return err
        }
        c.JSON(http.StatusOK, group)
        return nil
    })
    if err != nil {
        handleServiceError(c, err, ErrFailedToGetGroup)
    }
}

// CreateGroup creates a new group
// @Summary Create a group
// @Description Create a group with a unique name, linked to the given systems and permissions
// @Tags Groups
// @Accept json
// @Produce json
// @Param group body SaveGroupRequest true "Group to create"
// @Success 201 {object} models.Group
// @Failure 400 {object} map[string]string
// @Router /groups [post]
func CreateGroup(c *gin.Context) {
    var req SaveGroupRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    defer metrics.RecordDBOperation("create", "groups", time.Now())

    err := withTimeout(func(ctx context.Context) error {
        group, err := services.CreateGroup(database.DB.WithContext(ctx), req.Name, req.Description, req.SystemIDs, req.PermissionIDs)
        if err != nil {
            return err
        }
        c.JSON(http.StatusCreated, group)
        return nil
    })
    if err != nil {
        handleServiceError(c, err, ErrFailedToCreate)
    }
}

// UpdateGroup updates a group's attributes and link sets
// @Summary Update a group
// @Description Update a group's name, description and full system and permission link sets
// @Tags Groups
// @Accept json
// @Produce json
// @Param group_id path int true "Group ID"
// @Param group body SaveGroupRequest true "Group information to update"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /groups/{group_id} [put]
func UpdateGroup(c *gin.Context) {
    id, ok := parseGroupID(c)
    if !ok {
        return
    }

    var req SaveGroupRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    defer metrics.RecordDBOperation("update", "groups", time.Now())

    err := withTimeout(func(ctx context.Context) error {
        return services.UpdateGroup(database.DB.WithContext(ctx), id, req.Name, req.Description, req.SystemIDs, req.PermissionIDs)
    })
    if err != nil {
        handleServiceError(c, err, ErrFailedToUpdate)
        return
    }
    c.Status(http.StatusNoContent)
}

// DeleteGroup deletes a group, keeping the row as inactive while users or systems are linked
// @Summary Delete a group
// @Description Soft-delete a group that still has users or systems linked, remove it outright otherwise
// @Tags Groups
// @Accept json
// @Produce json
// @Param group_id path int true "Group ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /groups/{group_id} [delete]
func DeleteGroup(c *gin.Context) {
    id, ok := parseGroupID(c)
    if !ok {
        return
    }

    defer metrics.RecordDBOperation("delete", "groups", time.Now())

    err := withTimeout(func(ctx context.Context) error {
        return services.DeleteGroup(database.DB.WithContext(ctx), id)
    })
    if err != nil {
        handleServiceError(c, err, ErrFailedToDelete)
        return
    }
    c.Status(http.StatusNoContent)
}
