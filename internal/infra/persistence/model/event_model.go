package model

import (
	"time"

	"clubhub/internal/domain/entity"
)

// EventDocument is the Firestore representation of an event.
//
// StartDate and EndDate are polymorphic at rest: older writers stored
// provider-native timestamps while current writers store ISO-8601 strings.
// Both fields are therefore declared as any and normalized to strings on read.
type EventDocument struct {
	Title          string            `firestore:"title"`
	Description    string            `firestore:"description,omitempty"`
	ImageURL       string            `firestore:"imageUrl,omitempty"`
	ClubID         string            `firestore:"clubId"`
	StartDate      any               `firestore:"startDate"`
	EndDate        any               `firestore:"endDate"`
	Location       string            `firestore:"location,omitempty"`
	Capacity       int               `firestore:"capacity"`
	AttendeeIDs    []string          `firestore:"attendeeIds"`
	AttendeeStatus map[string]string `firestore:"attendeeStatus"`
	CreatedAt      time.Time         `firestore:"createdAt"`
	UpdatedAt      time.Time         `firestore:"updatedAt"`
}

// NormalizeDate converts a stored date value to an ISO-8601 string.
// String values pass through unchanged; native timestamps are rendered in UTC.
// Any other shape normalizes to the empty string.
func NormalizeDate(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	case *time.Time:
		if v == nil {
			return ""
		}

		return v.UTC().Format(time.RFC3339)
	default:
		return ""
	}
}

// ToEntity converts the document to a domain entity under the given store id.
func (d *EventDocument) ToEntity(id string) *entity.Event {
	attendeeStatus := make(map[string]entity.AttendeeStatus, len(d.AttendeeStatus))
	for userID, status := range d.AttendeeStatus {
		attendeeStatus[userID] = entity.AttendeeStatus(status)
	}

	return &entity.Event{
		ID:             id,
		Title:          d.Title,
		Description:    d.Description,
		ImageURL:       d.ImageURL,
		ClubID:         d.ClubID,
		StartDate:      NormalizeDate(d.StartDate),
		EndDate:        NormalizeDate(d.EndDate),
		Location:       d.Location,
		Capacity:       d.Capacity,
		AttendeeIDs:    d.AttendeeIDs,
		AttendeeStatus: attendeeStatus,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// EventDocumentFromEntity converts a domain entity to its document form.
// Dates are always written back as ISO-8601 strings, so every write migrates a
// timestamp-shaped document to the canonical representation.
func EventDocumentFromEntity(e *entity.Event) *EventDocument {
	attendeeIDs := e.AttendeeIDs
	if attendeeIDs == nil {
		attendeeIDs = []string{}
	}
	attendeeStatus := make(map[string]string, len(e.AttendeeStatus))
	for userID, status := range e.AttendeeStatus {
		attendeeStatus[userID] = status.String()
	}

	return &EventDocument{
		Title:          e.Title,
		Description:    e.Description,
		ImageURL:       e.ImageURL,
		ClubID:         e.ClubID,
		StartDate:      e.StartDate,
		EndDate:        e.EndDate,
		Location:       e.Location,
		Capacity:       e.Capacity,
		AttendeeIDs:    attendeeIDs,
		AttendeeStatus: attendeeStatus,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
