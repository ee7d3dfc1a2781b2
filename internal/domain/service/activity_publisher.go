package service

import "context"

// Activity event kinds published to the activity feed.
const (
	ActivityClubCreated  = "club.created"
	ActivityClubDeleted  = "club.deleted"
	ActivityClubApproved = "club.approved"
	ActivityEventCreated = "event.created"
)

// ActivityEvent describes a notable change in the club system. Events are
// advisory notifications for downstream consumers (portal feeds, digest
// mailers); publishing failures never fail the originating workflow.
type ActivityEvent struct {
	Kind      string `json:"kind"`                 // One of the Activity* constants.
	ClubID    string `json:"club_id,omitempty"`    // Club the event concerns.
	ClubName  string `json:"club_name,omitempty"`  // Denormalized club name for display.
	EventID   string `json:"event_id,omitempty"`   // Event id for event.* kinds.
	ActorID   string `json:"actor_id,omitempty"`   // User who triggered the change.
	RequestID string `json:"request_id,omitempty"` // Request id for tracing.
}

// ActivityPublisher abstracts the event publishing backend (noop, local HTTP
// push for development, or Google Pub/Sub).
type ActivityPublisher interface {
	// PublishActivity publishes a single activity event.
	PublishActivity(ctx context.Context, event *ActivityEvent) error

	// Close releases publisher resources.
	Close() error
}
