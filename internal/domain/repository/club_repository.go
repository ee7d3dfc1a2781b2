package repository

import (
	"context"
	"errors"

	"clubhub/internal/domain/entity"
)

// ErrClubNotFound is a domain-specific error returned when a club is not found.
var ErrClubNotFound = errors.New("club not found")

// ClubRepository defines the standard operations for club persistence.
type ClubRepository interface {
	// FindAll retrieves every club document.
	FindAll(ctx context.Context) ([]*entity.Club, error)

	// FindByID retrieves a single club by its store id.
	FindByID(ctx context.Context, id string) (*entity.Club, error)

	// Create persists a new club entity, letting the store assign the id.
	// The assigned id is written back to the entity.
	Create(ctx context.Context, club *entity.Club) error

	// Update replaces an existing club document.
	Update(ctx context.Context, club *entity.Club) error

	// Delete removes a club document.
	Delete(ctx context.Context, id string) error
}
