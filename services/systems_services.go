package services

import (
	"errors"

	"directory/models"

	"gorm.io/gorm"
)

// ListSystems returns all active systems ordered by id
func ListSystems(db *gorm.DB) ([]models.System, error) {
    var systems []models.System
    if err := db.Where("actived = ?", true).Order("id").Find(&systems).Error; err != nil {
        return nil, err
    }
    return systems, nil
}

// GetSystem returns an active system by id
func GetSystem(db *gorm.DB, id uint) (*models.System, error) {
    var system models.System
    err := db.Where("id = ? AND actived = ?", id, true).First(&system).Error
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrSystemNotFound
        }
        return nil, err
    }
    return &system, nil
}

// CreateSystem creates an active system with a unique name
func CreateSystem(db *gorm.DB, name string) (*models.System, error) {
    system := &models.System{Name: name, Actived: true}

    err := db.Transaction(func(tx *gorm.DB) error {
        var count int64
        if err := tx.Model(&models.System{}).Where("name = ?", name).Count(&count).Error; err != nil {
            return err
        }
        if count > 0 {
            return ErrSystemNameTaken
        }
        return tx.Create(system).Error
    })
    if err != nil {
        return nil, err
    }
    return system, nil
}

// UpdateSystem replaces the name of an active system
func UpdateSystem(db *gorm.DB, id uint, name string) error {
    return db.Transaction(func(tx *gorm.DB) error {
        var system models.System
        err := tx.Where("id = ? AND actived = ?", id, true).First(&system).Error
        if err != nil {
            if errors.Is(err, gorm.ErrRecordNotFound) {
                return ErrSystemNotFound
            }
            return err
        }

        var count int64
        if err := tx.Model(&models.System{}).Where("name = ? AND id <> ?", name, id).Count(&count).Error; err != nil {
            return err
        }
        if count > 0 {
            return ErrSystemNameTaken
        }

        return tx.Model(&system).Update("name", name).Error
    })
}

// DeleteSystem soft-deletes a system that is still linked to groups and
// removes the row outright otherwise
func DeleteSystem(db *gorm.DB, id uint) error {
    return db.Transaction(func(tx *gorm.DB) error {
        var system models.System
        if err := tx.Preload("Groups").First(&system, id).Error; err != nil {
            if errors.Is(err, gorm.ErrRecordNotFound) {
                return ErrSystemNotFound
            }
            return err
        }

        if len(system.Groups) > 0 {
            return tx.Model(&system).Update("actived", false).Error
        }
        return tx.Delete(&system).Error
    })
}

// SystemGroups returns the groups linked to an active system, verbatim
func SystemGroups(db *gorm.DB, id uint) ([]*models.Group, error) {
    var system models.System
    err := db.Where("id = ? AND actived = ?", id, true).Preload("Groups").First(&system).Error
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrSystemNotFound
        }
        return nil, err
    }
    return system.Groups, nil
}
