package entity

import "time"

// InvitationStatus represents the lifecycle state of a club invitation or
// club-founding request.
type InvitationStatus string

const (
	// InvitationStatusPending indicates the request awaits a decision.
	InvitationStatusPending InvitationStatus = "pending"
	// InvitationStatusApproved indicates an admin approved a founding request.
	InvitationStatusApproved InvitationStatus = "approved"
	// InvitationStatusAccepted indicates the receiver accepted a join invitation.
	InvitationStatusAccepted InvitationStatus = "accepted"
	// InvitationStatusRejected indicates the request was declined.
	InvitationStatusRejected InvitationStatus = "rejected"
)

// String returns the string representation of the InvitationStatus.
func (s InvitationStatus) String() string {
	return string(s)
}

// IsValid checks if the InvitationStatus is a valid value.
func (s InvitationStatus) IsValid() bool {
	switch s {
	case InvitationStatusPending, InvitationStatusApproved, InvitationStatusAccepted, InvitationStatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status permits no further transition.
func (s InvitationStatus) IsTerminal() bool {
	return s != InvitationStatusPending
}

// ClubInvitation represents either a proposal to found a new club (ReceiverID
// empty, ClubID empty until approval) or an invitation for a specific user to
// join an existing club.
type ClubInvitation struct {
	ID         string           // Opaque store-assigned id.
	ClubName   string           // Name of the club to found or join.
	ClubID     string           // Id of the existing club; empty for founding requests.
	SenderID   string           // Id of the requesting user.
	ReceiverID string           // Id of the invited user; empty for founding requests.
	Status     InvitationStatus // Lifecycle state.
	CreatedAt  time.Time        // Timestamp of request creation.
}

// IsFoundingRequest reports whether this is a request to found a new club
// rather than an invitation to join an existing one.
func (i *ClubInvitation) IsFoundingRequest() bool {
	return i.ReceiverID == ""
}

// Transition moves the invitation to the given terminal status. It reports
// whether the transition is allowed: only pending invitations may transition,
// and only to a terminal status.
func (i *ClubInvitation) Transition(to InvitationStatus) bool {
	if i.Status.IsTerminal() || !to.IsValid() || !to.IsTerminal() {
		return false
	}
	i.Status = to

	return true
}
