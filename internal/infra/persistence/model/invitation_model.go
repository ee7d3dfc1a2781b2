package model

import (
	"time"

	"clubhub/internal/domain/entity"
)

// InvitationDocument is the Firestore representation of a club invitation or
// club-founding request.
type InvitationDocument struct {
	ClubName   string    `firestore:"clubName"`
	ClubID     string    `firestore:"clubId,omitempty"`
	SenderID   string    `firestore:"senderId"`
	ReceiverID string    `firestore:"receiverId,omitempty"`
	Status     string    `firestore:"status"`
	CreatedAt  time.Time `firestore:"createdAt"`
}

// ToEntity converts the document to a domain entity under the given store id.
func (d *InvitationDocument) ToEntity(id string) *entity.ClubInvitation {
	return &entity.ClubInvitation{
		ID:         id,
		ClubName:   d.ClubName,
		ClubID:     d.ClubID,
		SenderID:   d.SenderID,
		ReceiverID: d.ReceiverID,
		Status:     entity.InvitationStatus(d.Status),
		CreatedAt:  d.CreatedAt,
	}
}

// InvitationDocumentFromEntity converts a domain entity to its document form.
func InvitationDocumentFromEntity(i *entity.ClubInvitation) *InvitationDocument {
	return &InvitationDocument{
		ClubName:   i.ClubName,
		ClubID:     i.ClubID,
		SenderID:   i.SenderID,
		ReceiverID: i.ReceiverID,
		Status:     i.Status.String(),
		CreatedAt:  i.CreatedAt,
	}
}
