package users

// Constants for error messages
const (
	ErrInvalidUserID    = "Invalid user ID"
	ErrFailedToGetUsers = "Failed to get users"
	ErrFailedToGetUser  = "Failed to get user"
	ErrFailedToCreate   = "Failed to create user"
	ErrFailedToUpdate   = "Failed to update user"
	ErrFailedToDelete   = "Failed to delete user"
	ErrFailedToGetGroups = "Failed to get user groups"
)

// SaveUserRequest model for creating or updating a user. GroupIDs declares the
// full group membership after the operation; omitting it clears all links on
// update.
type SaveUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	GroupIDs []uint `json:"group_ids"`
}
