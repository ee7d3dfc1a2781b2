package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClubInvitation_IsFoundingRequest(t *testing.T) {
	founding := &ClubInvitation{ClubName: "Go Study Group", SenderID: "user-1"}
	assert.True(t, founding.IsFoundingRequest())

	invitation := &ClubInvitation{ClubID: "club-1", SenderID: "user-1", ReceiverID: "user-2"}
	assert.False(t, invitation.IsFoundingRequest())
}

func TestClubInvitation_Transition(t *testing.T) {
	tests := []struct {
		name    string
		from    InvitationStatus
		to      InvitationStatus
		allowed bool
	}{
		{name: "pending to approved", from: InvitationStatusPending, to: InvitationStatusApproved, allowed: true},
		{name: "pending to accepted", from: InvitationStatusPending, to: InvitationStatusAccepted, allowed: true},
		{name: "pending to rejected", from: InvitationStatusPending, to: InvitationStatusRejected, allowed: true},
		{name: "pending to pending", from: InvitationStatusPending, to: InvitationStatusPending, allowed: false},
		{name: "pending to unknown", from: InvitationStatusPending, to: InvitationStatus("bogus"), allowed: false},
		{name: "approved is frozen", from: InvitationStatusApproved, to: InvitationStatusRejected, allowed: false},
		{name: "rejected is frozen", from: InvitationStatusRejected, to: InvitationStatusAccepted, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invitation := &ClubInvitation{Status: tt.from}

			got := invitation.Transition(tt.to)

			assert.Equal(t, tt.allowed, got)
			if tt.allowed {
				assert.Equal(t, tt.to, invitation.Status)
			} else {
				assert.Equal(t, tt.from, invitation.Status)
			}
		})
	}
}

func TestInvitationStatus_IsTerminal(t *testing.T) {
	assert.False(t, InvitationStatusPending.IsTerminal())
	assert.True(t, InvitationStatusApproved.IsTerminal())
	assert.True(t, InvitationStatusAccepted.IsTerminal())
	assert.True(t, InvitationStatusRejected.IsTerminal())
}
