package services

import (
	"errors"

	"directory/models"

	"gorm.io/gorm"
)

// ListUsers returns all active users ordered by id, with their groups and the
// systems and permissions of those groups resolved
func ListUsers(db *gorm.DB) ([]models.User, error) {
    var users []models.User
    err := db.Where("actived = ?", true).
        Order("id").
        Preload("Groups.Systems").
        Preload("Groups.Permissions").
        Find(&users).Error
    if err != nil {
        return nil, err
    }
    return users, nil
}

// GetUser returns an active user by id with its groups fully resolved
func GetUser(db *gorm.DB, id uint) (*models.User, error) {
    var user models.User
    err := db.Where("id = ? AND actived = ?", id, true).
        Preload("Groups.Systems").
        Preload("Groups.Permissions").
        First(&user).Error
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrUserNotFound
        }
        return nil, err
    }
    return &user, nil
}

// CreateUser creates an active user and links it to the given groups. Every
// group ID must resolve to an existing active group or nothing is persisted.
func CreateUser(db *gorm.DB, name, email string, groupIDs []uint) (*models.User, error) {
    user := &models.User{Name: name, Email: email, Actived: true}

    err := db.Transaction(func(tx *gorm.DB) error {
        var count int64
        if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
            return err
        }
        if count > 0 {
            return ErrEmailTaken
        }

        groups, invalid, err := ResolveGroups(tx, groupIDs)
        if err != nil {
            return err
        }
        if len(invalid) > 0 {
            return &InvalidReferenceError{References: []InvalidReference{{Kind: KindGroup, IDs: invalid}}}
        }

        user.Groups = groups
        return tx.Create(user).Error
    })
    if err != nil {
        return nil, err
    }
    return user, nil
}

// UpdateUser replaces the scalar attributes and the full group membership of an
// active user. An empty or absent group ID set clears all group links.
func UpdateUser(db *gorm.DB, id uint, name, email string, groupIDs []uint) error {
    return db.Transaction(func(tx *gorm.DB) error {
        var user models.User
        err := tx.Where("id = ? AND actived = ?", id, true).Preload("Groups").First(&user).Error
        if err != nil {
            if errors.Is(err, gorm.ErrRecordNotFound) {
                return ErrUserNotFound
            }
            return err
        }

        var count int64
        if err := tx.Model(&models.User{}).Where("email = ? AND id <> ?", email, id).Count(&count).Error; err != nil {
            return err
        }
        if count > 0 {
            return ErrEmailTaken
        }

        groups, invalid, err := ResolveGroups(tx, groupIDs)
        if err != nil {
            return err
        }
        if len(invalid) > 0 {
            return &InvalidReferenceError{References: []InvalidReference{{Kind: KindGroup, IDs: invalid}}}
        }

        updates := map[string]interface{}{"name": name, "email": email}
        if err := tx.Model(&user).Updates(updates).Error; err != nil {
            return err
        }

        // Full replace, never a merge: groups absent from the new set are
        // unlinked, and an empty set clears the membership outright
        if len(groups) == 0 {
            return tx.Model(&user).Association("Groups").Clear()
        }
        return tx.Model(&user).Association("Groups").Replace(groups)
    })
}

// DeleteUser soft-deletes a user that still belongs to groups and removes the
// row outright otherwise
func DeleteUser(db *gorm.DB, id uint) error {
    return db.Transaction(func(tx *gorm.DB) error {
        var user models.User
        if err := tx.Preload("Groups").First(&user, id).Error; err != nil {
            if errors.Is(err, gorm.ErrRecordNotFound) {
                return ErrUserNotFound
            }
            return err
        }

        if len(user.Groups) > 0 {
            return tx.Model(&user).Update("actived", false).Error
        }
        return tx.Delete(&user).Error
    })
}

// UserGroups returns the groups an active user belongs to, verbatim — a
// soft-deleted group linked to the user still appears, with actived false
func UserGroups(db *gorm.DB, id uint) ([]*models.Group, error) {
    var user models.User
    err := db.Where("id = ? AND actived = ?", id, true).Preload("Groups").First(&user).Error
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrUserNotFound
        }
        return nil, err
    }
    return user.Groups, nil
}
