package services

import (
	"testing"

	"directory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSystemThenGetRoundTrip(t *testing.T) {
    db := newTestDB(t)

    created := mustCreateSystem(t, db, "billing")
    require.NotZero(t, created.ID)

    got, err := GetSystem(db, created.ID)
    require.NoError(t, err)
    assert.Equal(t, "billing", got.Name)
    assert.True(t, got.Actived)
}

func TestCreateSystemDuplicateName(t *testing.T) {
    db := newTestDB(t)
    mustCreateSystem(t, db, "billing")

    _, err := CreateSystem(db, "billing")
    assert.ErrorIs(t, err, ErrSystemNameTaken)

    var count int64
    require.NoError(t, db.Model(&models.System{}).Count(&count).Error)
    assert.Equal(t, int64(1), count)
}

func TestUpdateSystem(t *testing.T) {
    db := newTestDB(t)
    system := mustCreateSystem(t, db, "billing")
    mustCreateSystem(t, db, "crm")

    require.NoError(t, UpdateSystem(db, system.ID, "invoicing"))

    got, err := GetSystem(db, system.ID)
    require.NoError(t, err)
    assert.Equal(t, "invoicing", got.Name)

    assert.ErrorIs(t, UpdateSystem(db, system.ID, "crm"), ErrSystemNameTaken)
    assert.ErrorIs(t, UpdateSystem(db, 999, "x"), ErrSystemNotFound)
}

func TestDeleteSystemLinkedToGroupSoftDeletes(t *testing.T) {
    db := newTestDB(t)
    system := mustCreateSystem(t, db, "billing")
    _, err := CreateGroup(db, "admins", "", []uint{system.ID}, nil)
    require.NoError(t, err)

    require.NoError(t, DeleteSystem(db, system.ID))

    var raw models.System
    require.NoError(t, db.First(&raw, system.ID).Error)
    assert.False(t, raw.Actived)

    _, err = GetSystem(db, system.ID)
    assert.ErrorIs(t, err, ErrSystemNotFound)
}

func TestDeleteSystemWithoutLinksHardDeletes(t *testing.T) {
    db := newTestDB(t)
    system := mustCreateSystem(t, db, "billing")

    require.NoError(t, DeleteSystem(db, system.ID))

    var count int64
    require.NoError(t, db.Model(&models.System{}).Where("id = ?", system.ID).Count(&count).Error)
    assert.Zero(t, count)

    assert.ErrorIs(t, DeleteSystem(db, system.ID), ErrSystemNotFound)
}

func TestSystemGroupsVerbatim(t *testing.T) {
    db := newTestDB(t)
    system := mustCreateSystem(t, db, "billing")
    group, err := CreateGroup(db, "admins", "", []uint{system.ID}, nil)
    require.NoError(t, err)
    mustCreateUser(t, db, "Alice", "alice@example.com", []uint{group.ID})

    // Soft-delete the group; the link row keeps it visible from the system side
    require.NoError(t, DeleteGroup(db, group.ID))

    groups, err := SystemGroups(db, system.ID)
    require.NoError(t, err)
    require.Len(t, groups, 1)
    assert.Equal(t, group.ID, groups[0].ID)
    assert.False(t, groups[0].Actived)

    _, err = SystemGroups(db, 999)
    assert.ErrorIs(t, err, ErrSystemNotFound)
}

func TestListSystemsOrderedByID(t *testing.T) {
    db := newTestDB(t)
    s1 := mustCreateSystem(t, db, "zeta")
    s2 := mustCreateSystem(t, db, "alpha")

    systems, err := ListSystems(db)
    require.NoError(t, err)
    require.Len(t, systems, 2)
    assert.Equal(t, s1.ID, systems[0].ID)
    assert.Equal(t, s2.ID, systems[1].ID)
}
