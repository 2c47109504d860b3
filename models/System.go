package models

// System represents an application or service that groups can be granted access to
type System struct {
    ID      uint     `gorm:"primaryKey;autoIncrement" json:"id"`
    Name    string   `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
    Actived bool     `gorm:"not null;default:true" json:"actived"`
    Groups  []*Group `gorm:"many2many:group_systems;" json:"-"`
}
