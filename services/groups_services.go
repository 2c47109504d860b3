package services

import (
	"errors"

	"directory/models"

	"gorm.io/gorm"
)

// ListGroups returns all active groups ordered by id with their systems and
// permissions resolved
func ListGroups(db *gorm.DB) ([]models.Group, error) {
    var groups []models.Group
    err := db.Where("actived = ?", true).
        Order("id").
        Preload("Systems").
        Preload("Permissions").
        Find(&groups).Error
    if err != nil {
        return nil, err
    }
    return groups, nil
}

// GetGroup returns an active group by id with its systems and permissions
func GetGroup(db *gorm.DB, id uint) (*models.Group, error) {
    var group models.Group
    err := db.Where("id = ? AND actived = ?", id, true).
        Preload("Systems").
        Preload("Permissions").
        First(&group).Error
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrGroupNotFound
        }
        return nil, err
    }
    return &group, nil
}

// CreateGroup creates an active group linked to the given systems and
// permissions. Both ID sets must resolve fully or nothing is persisted; the
// error reports the offending IDs of each set.
func CreateGroup(db *gorm.DB, name, description string, systemIDs, permissionIDs []uint) (*models.Group, error) {
    group := &models.Group{Name: name, Description: description, Actived: true}

    err := db.Transaction(func(tx *gorm.DB) error {
        var count int64
        if err := tx.Model(&models.Group{}).Where("name = ?", name).Count(&count).Error; err != nil {
            return err
        }
        if count > 0 {
            return ErrGroupNameTaken
        }

        systems, permissions, err := resolveGroupLinks(tx, systemIDs, permissionIDs)
        if err != nil {
            return err
        }

        group.Systems = systems
        group.Permissions = permissions
        return tx.Create(group).Error
    })
    if err != nil {
        return nil, err
    }
    return group, nil
}

// UpdateGroup replaces the scalar attributes and the full system and permission
// link sets of an active group. Empty or absent ID sets clear the links.
func UpdateGroup(db *gorm.DB, id uint, name, description string, systemIDs, permissionIDs []uint) error {
    return db.Transaction(func(tx *gorm.DB) error {
        var group models.Group
        err := tx.Where("id = ? AND actived = ?", id, true).First(&group).Error
        if err != nil {
            if errors.Is(err, gorm.ErrRecordNotFound) {
                return ErrGroupNotFound
            }
            return err
        }

        var count int64
        if err := tx.Model(&models.Group{}).Where("name = ? AND id <> ?", name, id).Count(&count).Error; err != nil {
            return err
        }
        if count > 0 {
            return ErrGroupNameTaken
        }

        systems, permissions, err := resolveGroupLinks(tx, systemIDs, permissionIDs)
        if err != nil {
            return err
        }

        updates := map[string]interface{}{"name": name, "description": description}
        if err := tx.Model(&group).Updates(updates).Error; err != nil {
            return err
        }

        // Full replace for both sets; an empty set clears the links outright
        if len(systems) == 0 {
            if err := tx.Model(&group).Association("Systems").Clear(); err != nil {
                return err
            }
        } else if err := tx.Model(&group).Association("Systems").Replace(systems); err != nil {
            return err
        }
        if len(permissions) == 0 {
            return tx.Model(&group).Association("Permissions").Clear()
        }
        return tx.Model(&group).Association("Permissions").Replace(permissions)
    })
}

// resolveGroupLinks validates both relationship ID sets of a group and reports
// every non-empty invalid set in a single error
func resolveGroupLinks(tx *gorm.DB, systemIDs, permissionIDs []uint) ([]*models.System, []*models.Permission, error) {
    systems, invalidSystems, err := ResolveSystems(tx, systemIDs)
    if err != nil {
        return nil, nil, err
    }
    permissions, invalidPermissions, err := ResolvePermissions(tx, permissionIDs)
    if err != nil {
        return nil, nil, err
    }

    var refs []InvalidReference
    if len(invalidSystems) > 0 {
        refs = append(refs, InvalidReference{Kind: KindSystem, IDs: invalidSystems})
    }
    if len(invalidPermissions) > 0 {
        refs = append(refs, InvalidReference{Kind: KindPermission, IDs: invalidPermissions})
    }
    if len(refs) > 0 {
        return nil, nil, &InvalidReferenceError{References: refs}
    }
    return systems, permissions, nil
}

// DeleteGroup soft-deletes a group that still has users or systems linked to it
// and removes the row outright otherwise, clearing any remaining link rows
func DeleteGroup(db *gorm.DB, id uint) error {
    return db.Transaction(func(tx *gorm.DB) error {
        var group models.Group
        if err := tx.Preload("Users").Preload("Systems").First(&group, id).Error; err != nil {
            if errors.Is(err, gorm.ErrRecordNotFound) {
                return ErrGroupNotFound
            }
            return err
        }

        if len(group.Users) > 0 || len(group.Systems) > 0 {
            return tx.Model(&group).Update("actived", false).Error
        }

        if count := tx.Model(&group).Association("Permissions").Count(); count > 0 {
            if err := tx.Model(&group).Association("Permissions").Clear(); err != nil {
                return err
            }
        }
        return tx.Delete(&group).Error
    })
}

// GroupSystems returns the systems linked to an active group, verbatim
func GroupSystems(db *gorm.DB, id uint) ([]*models.System, error) {
    var group models.Group
    err := db.Where("id = ? AND actived = ?", id, true).Preload("Systems").First(&group).Error
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrGroupNotFound
        }
        return nil, err
    }
    return group.Systems, nil
}

// GroupPermissions returns the permissions linked to an active group, verbatim
func GroupPermissions(db *gorm.DB, id uint) ([]*models.Permission, error) {
    var group models.Group
    err := db.Where("id = ? AND actived = ?", id, true).Preload("Permissions").First(&group).Error
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrGroupNotFound
        }
        return nil, err
    }
    return group.Permissions, nil
}

// AddGroupSystem links a system to a group. Both rows must be active.
func AddGroupSystem(db *gorm.DB, groupID, systemID uint) error {
    return db.Transaction(func(tx *gorm.DB) error {
        var group models.Group
        err := tx.Where("id = ? AND actived = ?", groupID, true).First(&group).Error
        if err != nil {
            if errors.Is(err, gorm.ErrRecordNotFound) {
                return ErrGroupNotFound
            }
            return err
        }

        var system models.System
        err = tx.Where("id = ? AND actived = ?", systemID, true).First(&system).Error
        if err != nil {
            if errors.Is(err, gorm.ErrRecordNotFound) {
                return ErrSystemNotFound
            }
            return err
        }

        return tx.Model(&group).Association("Systems").Append(&system)
    })
}

// RemoveGroupSystem unlinks a system from a group. The system must currently
// be linked to the group.
func RemoveGroupSystem(db *gorm.DB, groupID, systemID uint) error {
    return db.Transaction(func(tx *gorm.DB) error {
        var group models.Group
        err := tx.Where("id = ? AND actived = ?", groupID, true).Preload("Systems").First(&group).Error
        if err != nil {
            if errors.Is(err, gorm.ErrRecordNotFound) {
                return ErrGroupNotFound
            }
            return err
        }

        for _, system := range group.Systems {
            if system.ID == systemID {
                return tx.Model(&group).Association("Systems").Delete(system)
            }
        }
        return ErrSystemNotFound
    })
}
