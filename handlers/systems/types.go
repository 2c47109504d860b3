package systems

// Constants for error messages
const (
	ErrInvalidSystemID    = "Invalid system ID"
	ErrFailedToGetSystems = "Failed to get systems"
	ErrFailedToGetSystem  = "Failed to get system"
	ErrFailedToCreate     = "Failed to create system"
	ErrFailedToUpdate     = "Failed to update system"
	ErrFailedToDelete     = "Failed to delete system"
	ErrFailedToGetGroups  = "Failed to get system groups"
)

// SaveSystemRequest model for creating or updating a system
type SaveSystemRequest struct {
	Name string `json:"name" binding:"required"`
}
