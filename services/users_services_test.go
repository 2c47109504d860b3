package services

import (
	"testing"

	"directory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserThenGetRoundTrip(t *testing.T) {
    db := newTestDB(t)
    group := mustCreateGroup(t, db, "admins")

    created := mustCreateUser(t, db, "Alice", "alice@example.com", []uint{group.ID})
    require.NotZero(t, created.ID)

    got, err := GetUser(db, created.ID)
    require.NoError(t, err)
    assert.Equal(t, "Alice", got.Name)
    assert.Equal(t, "alice@example.com", got.Email)
    assert.True(t, got.Actived)
    require.Len(t, got.Groups, 1)
    assert.Equal(t, group.ID, got.Groups[0].ID)
    assert.Equal(t, "admins", got.Groups[0].Name)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
    db := newTestDB(t)
    mustCreateUser(t, db, "U1", "a@x.com", nil)

    _, err := CreateUser(db, "U2", "a@x.com", nil)
    assert.ErrorIs(t, err, ErrEmailTaken)

    var count int64
    require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
    assert.Equal(t, int64(1), count)
}

func TestCreateUserInvalidGroupID(t *testing.T) {
    db := newTestDB(t)
    group := mustCreateGroup(t, db, "admins")

    _, err := CreateUser(db, "Bob", "bob@example.com", []uint{group.ID, 999})

    var invalidRef *InvalidReferenceError
    require.ErrorAs(t, err, &invalidRef)
    assert.Equal(t, []uint{999}, invalidRef.IDsFor(KindGroup))

    // Nothing persisted
    var count int64
    require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
    assert.Zero(t, count)
}

func TestCreateUserRejectsInactiveGroup(t *testing.T) {
    db := newTestDB(t)
    group := mustCreateGroup(t, db, "admins")
    require.NoError(t, db.Model(group).Update("actived", false).Error)

    _, err := CreateUser(db, "Bob", "bob@example.com", []uint{group.ID})

    var invalidRef *InvalidReferenceError
    require.ErrorAs(t, err, &invalidRef)
    assert.Equal(t, []uint{group.ID}, invalidRef.IDsFor(KindGroup))
}

func TestUpdateUserReplacesGroupsNotMerges(t *testing.T) {
    db := newTestDB(t)
    g1 := mustCreateGroup(t, db, "g1")
    g2 := mustCreateGroup(t, db, "g2")
    g3 := mustCreateGroup(t, db, "g3")
    user := mustCreateUser(t, db, "Alice", "alice@example.com", []uint{g1.ID, g2.ID})

    require.NoError(t, UpdateUser(db, user.ID, "Alice", "alice@example.com", []uint{g3.ID}))

    got, err := GetUser(db, user.ID)
    require.NoError(t, err)
    require.Len(t, got.Groups, 1)
    assert.Equal(t, g3.ID, got.Groups[0].ID)
}

func TestUpdateUserEmptyGroupSetClearsAllLinks(t *testing.T) {
    db := newTestDB(t)
    g1 := mustCreateGroup(t, db, "g1")
    user := mustCreateUser(t, db, "Alice", "alice@example.com", []uint{g1.ID})

    require.NoError(t, UpdateUser(db, user.ID, "Alice Renamed", "alice@example.com", nil))

    got, err := GetUser(db, user.ID)
    require.NoError(t, err)
    assert.Equal(t, "Alice Renamed", got.Name)
    assert.Empty(t, got.Groups)
}

func TestUpdateUserInvalidGroupIDFailsEntirely(t *testing.T) {
    db := newTestDB(t)
    g1 := mustCreateGroup(t, db, "g1")
    user := mustCreateUser(t, db, "Alice", "alice@example.com", []uint{g1.ID})

    err := UpdateUser(db, user.ID, "Changed", "changed@example.com", []uint{999})

    var invalidRef *InvalidReferenceError
    require.ErrorAs(t, err, &invalidRef)
    assert.Equal(t, []uint{999}, invalidRef.IDsFor(KindGroup))

    // No partial persistence: scalars and links untouched
    got, err := GetUser(db, user.ID)
    require.NoError(t, err)
    assert.Equal(t, "Alice", got.Name)
    assert.Equal(t, "alice@example.com", got.Email)
    require.Len(t, got.Groups, 1)
    assert.Equal(t, g1.ID, got.Groups[0].ID)
}

func TestUpdateUserDuplicateEmailOfOtherUser(t *testing.T) {
    db := newTestDB(t)
    mustCreateUser(t, db, "U1", "a@x.com", nil)
    u2 := mustCreateUser(t, db, "U2", "b@x.com", nil)

    assert.ErrorIs(t, UpdateUser(db, u2.ID, "U2", "a@x.com", nil), ErrEmailTaken)

    // Keeping its own email is not a conflict
    assert.NoError(t, UpdateUser(db, u2.ID, "U2", "b@x.com", nil))
}

func TestUpdateUserNotFoundAndInactive(t *testing.T) {
    db := newTestDB(t)
    assert.ErrorIs(t, UpdateUser(db, 42, "X", "x@x.com", nil), ErrUserNotFound)

    // A soft-deleted user cannot be updated
    g1 := mustCreateGroup(t, db, "g1")
    user := mustCreateUser(t, db, "Alice", "alice@example.com", []uint{g1.ID})
    require.NoError(t, DeleteUser(db, user.ID))
    assert.ErrorIs(t, UpdateUser(db, user.ID, "Alice", "alice@example.com", nil), ErrUserNotFound)
}

func TestDeleteUserWithGroupsSoftDeletes(t *testing.T) {
    db := newTestDB(t)
    g1 := mustCreateGroup(t, db, "g1")
    user := mustCreateUser(t, db, "Alice", "alice@example.com", []uint{g1.ID})

    require.NoError(t, DeleteUser(db, user.ID))

    // Row remains, observable as inactive by raw id
    var raw models.User
    require.NoError(t, db.First(&raw, user.ID).Error)
    assert.False(t, raw.Actived)

    // Filtered reads no longer see it
    _, err := GetUser(db, user.ID)
    assert.ErrorIs(t, err, ErrUserNotFound)

    users, err := ListUsers(db)
    require.NoError(t, err)
    assert.Empty(t, users)
}

func TestDeleteUserWithoutGroupsHardDeletes(t *testing.T) {
    db := newTestDB(t)
    user := mustCreateUser(t, db, "Alice", "alice@example.com", nil)

    require.NoError(t, DeleteUser(db, user.ID))

    var count int64
    require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Count(&count).Error)
    assert.Zero(t, count)

    _, err := GetUser(db, user.ID)
    assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUserNotFound(t *testing.T) {
    db := newTestDB(t)
    assert.ErrorIs(t, DeleteUser(db, 42), ErrUserNotFound)
}

func TestListUsersOrderedByIDWithResolvedCollections(t *testing.T) {
    db := newTestDB(t)
    system := mustCreateSystem(t, db, "billing")
    permission := mustCreatePermission(t, db, "read")
    group, err := CreateGroup(db, "admins", "", []uint{system.ID}, []uint{permission.ID})
    require.NoError(t, err)

    mustCreateUser(t, db, "B", "b@x.com", []uint{group.ID})
    mustCreateUser(t, db, "A", "a@x.com", nil)

    users, err := ListUsers(db)
    require.NoError(t, err)
    require.Len(t, users, 2)
    assert.Equal(t, "B", users[0].Name)
    assert.Equal(t, "A", users[1].Name)

    // Nested collections of the first user's group are resolved
    require.Len(t, users[0].Groups, 1)
    require.Len(t, users[0].Groups[0].Systems, 1)
    assert.Equal(t, system.ID, users[0].Groups[0].Systems[0].ID)
    require.Len(t, users[0].Groups[0].Permissions, 1)
    assert.Equal(t, permission.ID, users[0].Groups[0].Permissions[0].ID)
}

func TestUserGroupsReturnsCollectionVerbatim(t *testing.T) {
    db := newTestDB(t)
    group := mustCreateGroup(t, db, "admins")
    user := mustCreateUser(t, db, "Alice", "alice@example.com", []uint{group.ID})

    // Soft-delete the group by linking it to the user (link row keeps it soft)
    require.NoError(t, DeleteGroup(db, group.ID))

    groups, err := UserGroups(db, user.ID)
    require.NoError(t, err)
    require.Len(t, groups, 1)
    assert.Equal(t, group.ID, groups[0].ID)
    assert.False(t, groups[0].Actived)

    _, err = UserGroups(db, 999)
    assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSoftDeletedUserCanBeDeletedAgain(t *testing.T) {
    db := newTestDB(t)
    g1 := mustCreateGroup(t, db, "g1")
    user := mustCreateUser(t, db, "Alice", "alice@example.com", []uint{g1.ID})

    require.NoError(t, DeleteUser(db, user.ID))
    require.NoError(t, DeleteUser(db, user.ID))

    var raw models.User
    require.NoError(t, db.First(&raw, user.ID).Error)
    assert.False(t, raw.Actived)
}

func TestEmailMatchIsExact(t *testing.T) {
    db := newTestDB(t)
    mustCreateUser(t, db, "U1", "a@x.com", nil)

    // Case differs, so this is not a duplicate
    _, err := CreateUser(db, "U2", "A@X.com", nil)
    assert.NoError(t, err)
}
