package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"clubhub/internal/domain/entity"
)

func TestNormalizeDate(t *testing.T) {
	ts := time.Date(2025, 3, 14, 15, 9, 26, 0, time.FixedZone("CST", 8*3600))

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "string passes through", value: "2025-03-14T15:09:26+08:00", want: "2025-03-14T15:09:26+08:00"},
		{name: "timestamp rendered in UTC", value: ts, want: "2025-03-14T07:09:26Z"},
		{name: "timestamp pointer", value: &ts, want: "2025-03-14T07:09:26Z"},
		{name: "nil pointer", value: (*time.Time)(nil), want: ""},
		{name: "nil value", value: nil, want: ""},
		{name: "unexpected shape", value: 42, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDate(tt.value))
		})
	}
}

func TestEventDocument_ToEntity_NormalizesDates(t *testing.T) {
	doc := &EventDocument{
		Title:          "Weekly Meetup",
		ClubID:         "club-1",
		StartDate:      time.Date(2025, 3, 14, 15, 0, 0, 0, time.UTC),
		EndDate:        "2025-03-14T17:00:00Z",
		Capacity:       20,
		AttendeeIDs:    []string{"user-1"},
		AttendeeStatus: map[string]string{"user-1": "registered"},
	}

	event := doc.ToEntity("event-1")

	assert.Equal(t, "event-1", event.ID)
	assert.Equal(t, "2025-03-14T15:00:00Z", event.StartDate)
	assert.Equal(t, "2025-03-14T17:00:00Z", event.EndDate)
	assert.Equal(t, entity.AttendeeStatusRegistered, event.AttendeeStatus["user-1"])
}

func TestEventDocumentFromEntity_WritesStringDates(t *testing.T) {
	event := &entity.Event{
		ID:        "event-1",
		Title:     "Weekly Meetup",
		ClubID:    "club-1",
		StartDate: "2025-03-14T15:00:00Z",
		EndDate:   "2025-03-14T17:00:00Z",
	}

	doc := EventDocumentFromEntity(event)

	assert.Equal(t, "2025-03-14T15:00:00Z", doc.StartDate)
	assert.Equal(t, "2025-03-14T17:00:00Z", doc.EndDate)
	assert.NotNil(t, doc.AttendeeIDs)
	assert.NotNil(t, doc.AttendeeStatus)
}
