package services

import (
	"directory/models"

	"gorm.io/gorm"
)

// Relationship kinds reported in InvalidReferenceError
const (
    KindGroup      = "group"
    KindSystem     = "system"
    KindPermission = "permission"
)

// ResolveGroups partitions a submitted set of group IDs into the active rows
// they resolve to and the IDs that are unknown or inactive. Read-only.
func ResolveGroups(db *gorm.DB, ids []uint) ([]*models.Group, []uint, error) {
    if len(ids) == 0 {
        return nil, nil, nil
    }

    var groups []*models.Group
    if err := db.Where("id IN ? AND actived = ?", ids, true).Find(&groups).Error; err != nil {
        return nil, nil, err
    }

    resolved := make(map[uint]bool, len(groups))
    for _, g := range groups {
        resolved[g.ID] = true
    }
    return groups, unresolvedIDs(ids, resolved), nil
}

// ResolveSystems partitions a submitted set of system IDs the same way
func ResolveSystems(db *gorm.DB, ids []uint) ([]*models.System, []uint, error) {
    if len(ids) == 0 {
        return nil, nil, nil
    }

    var systems []*models.System
    if err := db.Where("id IN ? AND actived = ?", ids, true).Find(&systems).Error; err != nil {
        return nil, nil, err
    }

    resolved := make(map[uint]bool, len(systems))
    for _, s := range systems {
        resolved[s.ID] = true
    }
    return systems, unresolvedIDs(ids, resolved), nil
}

// ResolvePermissions partitions a submitted set of permission IDs the same way
func ResolvePermissions(db *gorm.DB, ids []uint) ([]*models.Permission, []uint, error) {
    if len(ids) == 0 {
        return nil, nil, nil
    }

    var permissions []*models.Permission
    if err := db.Where("id IN ? AND actived = ?", ids, true).Find(&permissions).Error; err != nil {
        return nil, nil, err
    }

    resolved := make(map[uint]bool, len(permissions))
    for _, p := range permissions {
        resolved[p.ID] = true
    }
    return permissions, unresolvedIDs(ids, resolved), nil
}

// unresolvedIDs returns the requested IDs missing from the resolved set,
// in request order, without duplicates
func unresolvedIDs(requested []uint, resolved map[uint]bool) []uint {
    var invalid []uint
    seen := make(map[uint]bool, len(requested))
    for _, id := range requested {
        if resolved[id] || seen[id] {
            continue
        }
        seen[id] = true
        invalid = append(invalid, id)
    }
    return invalid
}
