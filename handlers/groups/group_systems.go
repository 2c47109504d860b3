package groups

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"directory/database"
	"directory/metrics"
	"directory/services"
	"directory/utils/response"

	"github.com/gin-gonic/gin"
)

// parseSystemID parses the system_id path parameter
func parseSystemID(c *gin.Context) (uint, bool) {
    id, err := strconv.ParseUint(c.Param("system_id"), 10, 32)
    if err != nil {
        response.Error(c, http.StatusBadRequest, ErrInvalidSystemID)
        return 0, false
    }
    return uint(id), true
}

// GetGroupSystems retrieves the systems linked to a group
// @Summary Get a group's systems
// @Description Get the systems linked to an active group, including soft-deleted systems still linked
// @Tags Groups
// @Accept json
// @Produce json
// @Param group_id path int true "Group ID"
// @Success 200 {array} models.System
// @Failure 404 {object} map[string]string
// @Router /groups/{group_id}/systems [get]
func GetGroupSystems(c *gin.Context) {
    id, ok := parseGroupID(c)
    if !ok {
        return
    }

    err := withTimeout(func(ctx context.Context) error {
        systems, err := services.GroupSystems(database.DB.WithContext(ctx), id)
        if err != nil {
            return err
        }
        c.JSON(http.StatusOK, systems)
        return nil
    })
    if err != nil {
        handleServiceError(c, err, ErrFailedToGetSystems)
    }
}

// AddGroupSystem links a system to a group
// @Summary Link a system to a group
// @Description Link an active system to an active group
// @Tags Groups
// @Accept json
// @Produce json
// @Param group_id path int true "Group ID"
// @Param system_id path int true "System ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /groups/{group_id}/systems/{system_id} [post]
func AddGroupSystem(c *gin.Context) {
    groupID, ok := parseGroupID(c)
    if !ok {
        return
    }
    systemID, ok := parseSystemID(c)
    if !ok {
        return
    }

    defer metrics.RecordDBOperation("link", "group_systems", time.Now())

    err := withTimeout(func(ctx context.Context) error {
        return services.AddGroupSystem(database.DB.WithContext(ctx), groupID, systemID)
    })
    if err != nil {
        handleServiceError(c, err, ErrFailedToLinkSystem)
        return
    }
    c.Status(http.StatusNoContent)
}

// RemoveGroupSystem unlinks a system from a group
// @Summary Unlink a system from a group
// @Description Unlink a system currently linked to an active group
// @Tags Groups
// @Accept json
// @Produce json
// @Param group_id path int true "Group ID"
// @Param system_id path int true "System ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /groups/{group_id}/systems/{system_id} [delete]
func RemoveGroupSystem(c *gin.Context) {
    groupID, ok := parseGroupID(c)
    if !ok {
        return
    }
    systemID, ok := parseSystemID(c)
    if !ok {
        return
    }

    defer metrics.RecordDBOperation("unlink", "group_systems", time.Now())

    err := withTimeout(func(ctx context.Context) error {
        return services.RemoveGroupSystem(database.DB.WithContext(ctx), groupID, systemID)
    })
    if err != nil {
        handleServiceError(c, err, ErrFailedToUnlinkSystem)
        return
    }
    c.Status(http.StatusNoContent)
}
