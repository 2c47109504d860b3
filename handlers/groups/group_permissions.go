package groups

import (
	"context"
	"net/http"

	"directory/database"
	"directory/services"

	"github.com/gin-gonic/gin"
)

// GetGroupPermissions retrieves the permissions linked to a group
// @Summary Get a group's permissions
// @Description Get the permissions linked to an active group, including soft-deleted permissions still linked
// @Tags Groups
// @Accept json
// @Produce json
// @Param group_id path int true "Group ID"
// @Success 200 {array} models.Permission
// @Failure 404 {object} map[string]string
// @Router /groups/{group_id}/permissions [get]
func GetGroupPermissions(c *gin.Context) {
    id, ok := parseGroupID(c)
    if !ok {
        return
    }

    err := withTimeout(func(ctx context.Context) error {
        permissions, err := services.GroupPermissions(database.DB.WithContext(ctx), id)
        if err != nil {
            return err
        }
        c.JSON(http.StatusOK, permissions)
        return nil
    })
    if err != nil {
        handleServiceError(c, err, ErrFailedToGetPerms)
    }
}
