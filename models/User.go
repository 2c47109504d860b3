package models

// User represents a directory account that can belong to any number of groups
type User struct {
    ID      uint     `gorm:"primaryKey;autoIncrement" json:"id"`
    Name    string   `gorm:"type:varchar(100);not null" json:"name"`
    Email   string   `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
    Actived bool     `gorm:"not null;default:true" json:"actived"`
    Groups  []*Group `gorm:"many2many:user_groups;" json:"groups"`
}
