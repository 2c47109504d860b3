package services

import (
	"errors"

	"directory/models"

	"gorm.io/gorm"
)

// ListPermissions returns all active permissions ordered by id
func ListPermissions(db *gorm.DB) ([]models.Permission, error) {
    var permissions []models.Permission
    if err := db.Where("actived = ?", true).Order("id").Find(&permissions).Error; err != nil {
        return nil, err
    }
    return permissions, nil
}

// GetPermission returns an active permission by id
func GetPermission(db *gorm.DB, id uint) (*models.Permission, error) {
    var permission models.Permission
    err := db.Where("id = ? AND actived = ?", id, true).First(&permission).Error
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrPermissionNotFound
        }
        return nil, err
    }
    return &permission, nil
}

// CreatePermission creates an active permission with a unique name
func CreatePermission(db *gorm.DB, name, description string) (*models.Permission, error) {
    permission := &models.Permission{Name: name, Description: description, Actived: true}

    err := db.Transaction(func(tx *gorm.DB) error {
        var count int64
        if err := tx.Model(&models.Permission{}).Where("name = ?", name).Count(&count).Error; err != nil {
            return err
        }
        if count > 0 {
            return ErrPermissionNameTaken
        }
        return tx.Create(permission).Error
    })
    if err != nil {
        return nil, err
    }
    return permission, nil
}

// UpdatePermission replaces the scalar attributes of an active permission
func UpdatePermission(db *gorm.DB, id uint, name, description string) error {
    return db.Transaction(func(tx *gorm.DB) error {
        var permission models.Permission
        err := tx.Where("id = ? AND actived = ?", id, true).First(&permission).Error
        if err != nil {
            if errors.Is(err, gorm.ErrRecordNotFound) {
                return ErrPermissionNotFound
            }
            return err
        }

        var count int64
        if err := tx.Model(&models.Permission{}).Where("name = ? AND id <> ?", name, id).Count(&count).Error; err != nil {
            return err
        }
        if count > 0 {
            return ErrPermissionNameTaken
        }

        updates := map[string]interface{}{"name": name, "description": description}
        return tx.Model(&permission).Updates(updates).Error
    })
}

// DeletePermission soft-deletes a permission that is still attached to groups
// and removes the row outright otherwise. Same lifecycle rule as the other
// entities: the legacy unconditional hard delete is gone.
func DeletePermission(db *gorm.DB, id uint) error {
    return db.Transaction(func(tx *gorm.DB) error {
        var permission models.Permission
        if err := tx.Preload("Groups").First(&permission, id).Error; err != nil {
            if errors.Is(err, gorm.ErrRecordNotFound) {
                return ErrPermissionNotFound
            }
            return err
        }

        if len(permission.Groups) > 0 {
            return tx.Model(&permission).Update("actived", false).Error
        }
        return tx.Delete(&permission).Error
    })
}
