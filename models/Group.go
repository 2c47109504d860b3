package models

// Group represents a named set of users and the systems and permissions granted to them.
// Users, Systems and Permissions are symmetric many-to-many links; the reverse side
// (Users) is hidden from JSON so serialized graphs stay acyclic.
type Group struct {
    ID          uint          `gorm:"primaryKey;autoIncrement" json:"id"`
    Name        string        `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
    Description string        `gorm:"type:varchar(255)" json:"description"`
    Actived     bool          `gorm:"not null;default:true" json:"actived"`
    Users       []*User       `gorm:"many2many:user_groups;" json:"-"`
    Systems     []*System     `gorm:"many2many:group_systems;" json:"systems"`
    Permissions []*Permission `gorm:"many2many:group_permissions;" json:"permissions"`
}
