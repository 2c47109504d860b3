package systems

import (
	"context"
	"net/http"

	"directory/database"
	"directory/services"

	"github.com/gin-gonic/gin"
)

// GetSystemGroups retrieves the groups linked to a system
// @Summary Get a system's groups
// @Description Get the groups linked to an active system, including soft-deleted groups still linked
// @Tags Systems
// @Accept json
// @Produce json
// @Param system_id path int true "System ID"
// @Success 200 {array} models.Group
// @Failure 404 {object} map[string]string
// @Router /systems/{system_id}/groups [get]
func GetSystemGroups(c *gin.Context) {
    id, ok := parseSystemID(c)
    if !ok {
        return
    }

    err := withTimeout(func(ctx context.Context) error {
        groups, err := services.SystemGroups(database.DB.WithContext(ctx), id)
        if err != nil {
            return err
        }
        c.JSON(http.StatusOK, groups)
        return nil
    })
    if err != nil {
        handleServiceError(c, err, ErrFailedToGetGroups)
    }
}
