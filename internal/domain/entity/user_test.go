package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_JoinClub_KeepsListsInSync(t *testing.T) {
	user := &User{}

	user.JoinClub("club-1", ClubRoleMember)
	user.JoinClub("club-2", ClubRoleAdmin)

	assert.Equal(t, []string{"club-1", "club-2"}, user.ClubIDs)
	assert.Equal(t, ClubRoleMember, user.ClubRoles["club-1"])
	assert.Equal(t, ClubRoleAdmin, user.ClubRoles["club-2"])
}

func TestUser_JoinClub_ExistingMembershipOnlyUpdatesRole(t *testing.T) {
	user := &User{}
	user.JoinClub("club-1", ClubRoleMember)

	user.JoinClub("club-1", ClubRoleAdmin)

	assert.Equal(t, []string{"club-1"}, user.ClubIDs)
	assert.Equal(t, ClubRoleAdmin, user.ClubRoles["club-1"])
}

func TestUser_LeaveClub(t *testing.T) {
	user := &User{}
	user.JoinClub("club-1", ClubRoleMember)
	user.JoinClub("club-2", ClubRoleMember)

	user.LeaveClub("club-1")

	assert.Equal(t, []string{"club-2"}, user.ClubIDs)
	assert.NotContains(t, user.ClubRoles, "club-1")
}

func TestUser_LeaveClub_NonMembershipIsNoOp(t *testing.T) {
	user := &User{}
	user.JoinClub("club-1", ClubRoleMember)

	user.LeaveClub("ghost")

	assert.Equal(t, []string{"club-1"}, user.ClubIDs)
}

func TestUser_IsMemberOf(t *testing.T) {
	user := &User{}
	user.JoinClub("club-1", ClubRoleMember)

	assert.True(t, user.IsMemberOf("club-1"))
	assert.False(t, user.IsMemberOf("club-2"))
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleUser.IsValid())
	assert.False(t, Role("moderator").IsValid())
}

func TestClubRole_IsValid(t *testing.T) {
	assert.True(t, ClubRoleAdmin.IsValid())
	assert.True(t, ClubRoleMember.IsValid())
	assert.False(t, ClubRole("owner").IsValid())
}
