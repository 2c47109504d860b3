package groups

// Constants for error messages
const (
	ErrInvalidGroupID        = "Invalid group ID"
	ErrInvalidSystemID       = "Invalid system ID"
	ErrFailedToGetGroups     = "Failed to get groups"
	ErrFailedToGetGroup      = "Failed to get group"
	ErrFailedToCreate        = "Failed to create group"
	ErrFailedToUpdate        = "Failed to update group"
	ErrFailedToDelete        = "Failed to delete group"
	ErrFailedToGetSystems    = "Failed to get group systems"
	ErrFailedToGetPerms      = "Failed to get group permissions"
	ErrFailedToLinkSystem    = "Failed to link system to group"
	ErrFailedToUnlinkSystem  = "Failed to unlink system from group"
)

// SaveGroupRequest model for creating or updating a group. SystemIDs and
// PermissionIDs declare the full link sets after the operation; omitting a set
// clears it on update.
type SaveGroupRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	SystemIDs     []uint `json:"system_ids"`
	PermissionIDs []uint `json:"permission_ids"`
}
