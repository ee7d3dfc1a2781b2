package repository

import (
	"context"
	"errors"

	"clubhub/internal/domain/entity"
)

// ErrEventNotFound is a domain-specific error returned when an event is not found.
var ErrEventNotFound = errors.New("event not found")

// EventRepository defines the standard operations for event persistence.
type EventRepository interface {
	// FindAll retrieves every event document.
	FindAll(ctx context.Context) ([]*entity.Event, error)

	// FindByID retrieves a single event by its store id.
	FindByID(ctx context.Context, id string) (*entity.Event, error)

	// FindByClubID retrieves all events owned by the given club.
	FindByClubID(ctx context.Context, clubID string) ([]*entity.Event, error)

	// Create persists a new event entity, letting the store assign the id.
	// The assigned id is written back to the entity.
	Create(ctx context.Context, event *entity.Event) error

	// Update replaces an existing event document.
	Update(ctx context.Context, event *entity.Event) error

	// Delete removes an event document.
	Delete(ctx context.Context, id string) error
}
