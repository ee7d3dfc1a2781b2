package repository

import (
	"context"
	"errors"

	"clubhub/internal/domain/entity"
)

// ErrInvitationNotFound is a domain-specific error returned when an invitation is not found.
var ErrInvitationNotFound = errors.New("invitation not found")

// InvitationRepository defines the standard operations for club invitation and
// club-founding request persistence.
type InvitationRepository interface {
	// FindAll retrieves every invitation document.
	FindAll(ctx context.Context) ([]*entity.ClubInvitation, error)

	// FindByID retrieves a single invitation by its store id.
	FindByID(ctx context.Context, id string) (*entity.ClubInvitation, error)

	// FindBySenderID retrieves all invitations created by the given user.
	FindBySenderID(ctx context.Context, senderID string) ([]*entity.ClubInvitation, error)

	// Create persists a new invitation entity, letting the store assign the id.
	// The assigned id is written back to the entity.
	Create(ctx context.Context, invitation *entity.ClubInvitation) error

	// Update replaces an existing invitation document.
	Update(ctx context.Context, invitation *entity.ClubInvitation) error

	// Delete removes an invitation document.
	Delete(ctx context.Context, id string) error
}
