package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClub_AddMember_KeepsListsInSync(t *testing.T) {
	club := &Club{}

	club.AddMember("user-1", ClubRoleMember)
	club.AddMember("user-2", ClubRoleAdmin)

	assert.Equal(t, []string{"user-1", "user-2"}, club.MemberIDs)
	assert.Equal(t, ClubRoleMember, club.MemberRoles["user-1"])
	assert.Equal(t, ClubRoleAdmin, club.MemberRoles["user-2"])
}

func TestClub_AddMember_ExistingMemberOnlyUpdatesRole(t *testing.T) {
	club := &Club{}
	club.AddMember("user-1", ClubRoleMember)

	club.AddMember("user-1", ClubRoleAdmin)

	assert.Equal(t, []string{"user-1"}, club.MemberIDs)
	assert.Equal(t, ClubRoleAdmin, club.MemberRoles["user-1"])
}

func TestClub_RemoveMember_ClearsRoleAndLeadership(t *testing.T) {
	club := &Club{LeaderID: "user-1"}
	club.AddMember("user-1", ClubRoleAdmin)
	club.AddMember("user-2", ClubRoleMember)

	club.RemoveMember("user-1")

	assert.Equal(t, []string{"user-2"}, club.MemberIDs)
	assert.NotContains(t, club.MemberRoles, "user-1")
	assert.Empty(t, club.LeaderID)
}

func TestClub_RemoveMember_NonMemberIsNoOp(t *testing.T) {
	club := &Club{LeaderID: "user-1"}
	club.AddMember("user-1", ClubRoleAdmin)

	club.RemoveMember("ghost")

	assert.Equal(t, []string{"user-1"}, club.MemberIDs)
	assert.Equal(t, "user-1", club.LeaderID)
}

func TestClub_AddEvent_IsIdempotent(t *testing.T) {
	club := &Club{}

	club.AddEvent("event-1")
	club.AddEvent("event-1")
	club.AddEvent("event-2")

	assert.Equal(t, []string{"event-1", "event-2"}, club.EventIDs)
}

func TestClub_RemoveEvent(t *testing.T) {
	club := &Club{EventIDs: []string{"event-1", "event-2"}}

	club.RemoveEvent("event-1")

	assert.Equal(t, []string{"event-2"}, club.EventIDs)
}

func TestClub_AdminIDs_PreservesMemberOrder(t *testing.T) {
	club := &Club{}
	club.AddMember("user-1", ClubRoleAdmin)
	club.AddMember("user-2", ClubRoleMember)
	club.AddMember("user-3", ClubRoleAdmin)

	assert.Equal(t, []string{"user-1", "user-3"}, club.AdminIDs())
}

func TestClub_AdminIDs_Empty(t *testing.T) {
	club := &Club{}
	club.AddMember("user-1", ClubRoleMember)

	assert.Empty(t, club.AdminIDs())
}
