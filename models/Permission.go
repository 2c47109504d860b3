package models

// Permission represents a named capability that can be attached to groups
type Permission struct {
    ID          uint     `gorm:"primaryKey;autoIncrement" json:"id"`
    Name        string   `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
    Description string   `gorm:"type:varchar(255)" json:"description"`
    Actived     bool     `gorm:"not null;default:true" json:"actived"`
    Groups      []*Group `gorm:"many2many:group_permissions;" json:"-"`
}
