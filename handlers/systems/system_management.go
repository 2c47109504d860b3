package systems

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

// parseSystemID parses the system_id path parameter
func parseSystemID(c *gin.Context) (uint, bool) {
    id, err := strconv.ParseUint(c.Param("system_id"), 10, 32)
    if err != nil {
        response.Error(c, http.StatusBadRequest, ErrInvalidSystemID)
        return 0, false
    }
    return uint(id), true
}

// handleServiceError translates a service error into an HTTP response
func handleServiceError(c *gin.Context, err error, fallback string) {
    switch {
    case errors.Is(err, services.ErrSystemNotFound):
        response.Error(c, http.StatusNotFound, err.Error())
    case errors.Is(err, services.ErrSystemNameTaken):
        response.Error(c, http.StatusBadRequest, err.Error())
    default:
        response.Error(c, http.StatusInternalServerError, fallback)
    }
}

// GetSystems retrieves all active systems
// @Summary Get all systems
// @Description Get all active systems ordered by id
// @Tags Systems
// @Accept json
// @Produce json
// @Success 200 {array} models.System
// @Failure 500 {object} map[string]string
// @Router /systems [get]
func GetSystems(c *gin.Context) {
    err := withTimeout(func(ctx context.Context) error {
        systems, err := services.ListSystems(database.DB.WithContext(ctx))
        if err != nil {
            return err
        }
        c.JSON(http.StatusOK, systems)
        return nil
    })
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToGetSystems)
    }
}

// GetSystem retrieves an active system by ID
// @Summary Get a system
// @Description Get an active system by id
// @Tags Systems
// @Accept json
// @Produce json
// @Param system_id path int true "System ID"
// @Success 200 {object} models.System
// @Failure 404 {object} map[string]string
// @Router /systems/{system_id} [get]
func GetSystem(c *gin.Context) {
    id, ok := parseSystemID(c)
    if !ok {
        return
    }

    err := withTimeout(func(ctx context.Context) error {
        system, err := services.GetSystem(database.DB.WithContext(ctx), id)
        if err != nil {
            return err
        }
        c.JSON(http.StatusOK, system)
        return nil
    })
    if err != nil {
        handleServiceError(c, err, ErrFailedToGetSystem)
    }
}

// CreateSystem creates a new system
// @Summary Create a system
// @Description Create a system with a unique name
// @Tags Systems
// @Accept json
// @Produce json
// @Param system body SaveSystemRequest true "System to create"
// @Success 201 {object} models.System
// @Failure 400 {object} map[string]string
// @Router /systems [post]
func CreateSystem(c *gin.Context) {
    var req SaveSystemRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    defer metrics.RecordDBOperation("create", "systems", time.Now())

    err := withTimeout(func(ctx context.Context) error {
        system, err := services.CreateSystem(database.DB.WithContext(ctx), req.Name)
        if err != nil {
            return err
        }
        c.JSON(http.StatusCreated, system)
        return nil
    })
    if err != nil {
        handleServiceError(c, err, ErrFailedToCreate)
    }
}

// UpdateSystem updates a system's name
// @Summary Update a system
// @Description Update the name of an active system
// @Tags Systems
// @Accept json
// @Produce json
// @Param system_id path int true "System ID"
// @Param system body SaveSystemRequest true "System information to update"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /systems/{system_id} [put]
func UpdateSystem(c *gin.Context) {
    id, ok := parseSystemID(c)
    if !ok {
        return
    }

    var req SaveSystemRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    defer metrics.RecordDBOperation("update", "systems", time.Now())

    err := withTimeout(func(ctx context.Context) error {
        return services.UpdateSystem(database.DB.WithContext(ctx), id, req.Name)
    })
    if err != nil {
        handleServiceError(c, err, ErrFailedToUpdate)
        return
    }
    c.Status(http.StatusNoContent)
}

// DeleteSystem deletes a system, keeping the row as inactive while group links remain
// @Summary Delete a system
// @Description Soft-delete a system that is still linked to groups, remove it outright otherwise
// @Tags Systems
// @Accept json
// @Produce json
// @Param system_id path int true "System ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /systems/{system_id} [delete]
func DeleteSystem(c *gin.Context) {
    id, ok := parseSystemID(c)
    if !ok {
        return
    }

    defer metrics.RecordDBOperation("delete", "systems", time.Now())

    err := withTimeout(func(ctx context.Context) error {
        return services.DeleteSystem(database.DB.WithContext(ctx), id)
    })
    if err != nil {
        handleServiceError(c, err, ErrFailedToDelete)
        return
    }
    c.Status(http.StatusNoContent)
}
