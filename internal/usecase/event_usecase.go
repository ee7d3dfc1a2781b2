package usecase

import (
	"context"

	"clubhub/internal/domain/entity"
)

// EventUsecase defines the interface for event-related business operations.
type EventUsecase interface {
	GetAllEvents(ctx context.Context) ([]*entity.Event, error)
	GetEvent(ctx context.Context, eventID string) (*entity.Event, error)
	GetEventsByClub(ctx context.Context, clubID string) ([]*entity.Event, error)
	CreateEvent(ctx context.Context, input *CreateEventInput) (*entity.Event, error)
	UpdateEvent(ctx context.Context, eventID string, input *UpdateEventInput) (*entity.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
	RegisterAttendee(ctx context.Context, eventID, userID string) error
	UpdateAttendeeStatus(ctx context.Context, eventID, userID string, status entity.AttendeeStatus) error
	RemoveAttendee(ctx context.Context, eventID, userID string) error
	CheckInQRCode(ctx context.Context, eventID string) ([]byte, error)
}

// --- Input DTOs ---

// CreateEventInput defines the data required to create an event.
type CreateEventInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	ClubID      string `json:"club_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	Location    string `json:"location,omitempty"`
	Capacity    int    `json:"capacity,omitempty"`
}

// UpdateEventInput defines the data that may be changed on an event. Nil
// fields are left untouched.
type UpdateEventInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	Location    *string `json:"location,omitempty"`
	Capacity    *int    `json:"capacity,omitempty"`
}
