package usecase

import (
	"context"

	"clubhub/internal/domain/entity"
)

// InvitationUsecase defines the interface for club invitation and founding
// request workflows.
type InvitationUsecase interface {
	GetAllInvitations(ctx context.Context) ([]*entity.ClubInvitation, error)
	GetInvitation(ctx context.Context, invitationID string) (*entity.ClubInvitation, error)
	GetInvitationsBySender(ctx context.Context, senderID string) ([]*entity.ClubInvitation, error)
	CreateInvitation(ctx context.Context, input *CreateInvitationInput) (*entity.ClubInvitation, error)
	UpdateStatus(ctx context.Context, invitationID string, status entity.InvitationStatus) error
	Approve(ctx context.Context, invitationID string) (*entity.Club, error)
	Reject(ctx context.Context, invitationID string) error
}

// --- Input DTOs ---

// CreateInvitationInput defines the data required to create an invitation or a
// club founding request. ReceiverID is empty for founding requests.
type CreateInvitationInput struct {
	ClubName   string `json:"club_name"`
	ClubID     string `json:"club_id,omitempty"`
	SenderID   string `json:"sender_id"`
	ReceiverID string `json:"receiver_id,omitempty"`
}
