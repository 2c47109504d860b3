package users

import (
	"context"
	"net/http"

	"directory/database"
	"directory/services"

	"github.com/gin-gonic/gin"
)

// GetUserGroups retrieves the groups a user belongs to
// @Summary Get a user's groups
// @Description Get the groups linked to an active user, including soft-deleted groups still linked
// @Tags Users
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} models.Group
// @Failure 404 {object} map[string]string
// @Router /users/{user_id}/groups [get]
func GetUserGroups(c *gin.Context) {
    id, ok := parseUserID(c)
    if !ok {
        return
    }

    err := withTimeout(func(ctx context.Context) error {
        groups, err := services.UserGroups(database.DB.WithContext(ctx), id)
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
