package permissions

// Constants for error messages
const (
	ErrInvalidPermissionID    = "Invalid permission ID"
	ErrFailedToGetPermissions = "Failed to get permissions"
	ErrFailedToGetPermission  = "Failed to get permission"
	ErrFailedToCreate         = "Failed to create permission"
	ErrFailedToUpdate         = "Failed to update permission"
	ErrFailedToDelete         = "Failed to delete permission"
)

// SavePermissionRequest model for creating or updating a permission
type SavePermissionRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}
