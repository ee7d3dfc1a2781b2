package entity

import (
	"slices"
	"time"
)

// AttendeeStatus represents the state of a single event registration.
type AttendeeStatus string

const (
	// AttendeeStatusRegistered indicates an active registration.
	AttendeeStatusRegistered AttendeeStatus = "registered"
	// AttendeeStatusAttended indicates the attendee checked in.
	AttendeeStatusAttended AttendeeStatus = "attended"
	// AttendeeStatusCancelled indicates the attendee cancelled.
	AttendeeStatusCancelled AttendeeStatus = "cancelled"
)

// String returns the string representation of the AttendeeStatus.
func (s AttendeeStatus) String() string {
	return string(s)
}

// IsValid checks if the AttendeeStatus is a valid value.
func (s AttendeeStatus) IsValid() bool {
	switch s {
	case AttendeeStatusRegistered, AttendeeStatusAttended, AttendeeStatusCancelled:
		return true
	default:
		return false
	}
}

// Event represents a club event. Start and end dates are ISO-8601 strings at
// this layer; the persistence layer normalizes provider-native timestamps to
// the same form on read.
type Event struct {
	ID             string                    // Opaque store-assigned id.
	Title          string                    // Event title.
	Description    string                    // Free-form description.
	ImageURL       string                    // Optional cover image URL.
	ClubID         string                    // Id of the owning club.
	StartDate      string                    // ISO-8601 start timestamp.
	EndDate        string                    // ISO-8601 end timestamp.
	Location       string                    // Free-form location.
	Capacity       int                       // Maximum number of attendees, positive.
	AttendeeIDs    []string                  // Ordered list of attendee user ids.
	AttendeeStatus map[string]AttendeeStatus // User id -> registration status. Key set mirrors AttendeeIDs.
	CreatedAt      time.Time                 // Timestamp of event creation.
	UpdatedAt      time.Time                 // Timestamp of the last modification.
}

// HasAttendee reports whether the given user is registered for the event.
func (e *Event) HasAttendee(userID string) bool {
	return slices.Contains(e.AttendeeIDs, userID)
}

// IsFull reports whether active registrations have reached capacity.
// Cancelled registrations do not count against capacity.
func (e *Event) IsFull() bool {
	if e.Capacity <= 0 {
		return false
	}
	active := 0
	for _, id := range e.AttendeeIDs {
		if e.AttendeeStatus[id] != AttendeeStatusCancelled {
			active++
		}
	}

	return active >= e.Capacity
}

// RegisterAttendee appends the given user with status registered. Registering
// an existing attendee resets their status to registered.
func (e *Event) RegisterAttendee(userID string) {
	if e.AttendeeStatus == nil {
		e.AttendeeStatus = make(map[string]AttendeeStatus)
	}
	if !slices.Contains(e.AttendeeIDs, userID) {
		e.AttendeeIDs = append(e.AttendeeIDs, userID)
	}
	e.AttendeeStatus[userID] = AttendeeStatusRegistered
}

// SetAttendeeStatus updates the status of an existing attendee. It reports
// whether the attendee was present.
func (e *Event) SetAttendeeStatus(userID string, status AttendeeStatus) bool {
	if !slices.Contains(e.AttendeeIDs, userID) {
		return false
	}
	e.AttendeeStatus[userID] = status

	return true
}

// RemoveAttendee removes the given user from the attendee list. Removing a user
// who is not an attendee is a no-op.
func (e *Event) RemoveAttendee(userID string) {
	e.AttendeeIDs = slices.DeleteFunc(e.AttendeeIDs, func(id string) bool { return id == userID })
	delete(e.AttendeeStatus, userID)
}
