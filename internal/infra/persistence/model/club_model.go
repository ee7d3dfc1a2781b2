package model

import (
	"time"

	"clubhub/internal/domain/entity"
)

// ClubDocument is the Firestore representation of a club.
type ClubDocument struct {
	Name           string            `firestore:"name"`
	Description    string            `firestore:"description,omitempty"`
	Type           string            `firestore:"type,omitempty"`
	Tags           []string          `firestore:"tags,omitempty"`
	Activities     []string          `firestore:"activities,omitempty"`
	RequiredSkills []string          `firestore:"requiredSkills,omitempty"`
	MeetingTime    string            `firestore:"meetingTime,omitempty"`
	LeaderID       string            `firestore:"leaderId,omitempty"`
	MemberIDs      []string          `firestore:"memberIds"`
	MemberRoles    map[string]string `firestore:"memberRoles"`
	EventIDs       []string          `firestore:"eventIds"`
	CreatedAt      time.Time         `firestore:"createdAt"`
	UpdatedAt      time.Time         `firestore:"updatedAt"`
}

// ToEntity converts the document to a domain entity under the given store id.
func (d *ClubDocument) ToEntity(id string) *entity.Club {
	memberRoles := make(map[string]entity.ClubRole, len(d.MemberRoles))
	for userID, role := range d.MemberRoles {
		memberRoles[userID] = entity.ClubRole(role)
	}

	return &entity.Club{
		ID:             id,
		Name:           d.Name,
		Description:    d.Description,
		Type:           d.Type,
		Tags:           d.Tags,
		Activities:     d.Activities,
		RequiredSkills: d.RequiredSkills,
		MeetingTime:    d.MeetingTime,
		LeaderID:       d.LeaderID,
		MemberIDs:      d.MemberIDs,
		MemberRoles:    memberRoles,
		EventIDs:       d.EventIDs,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// ClubDocumentFromEntity converts a domain entity to its document form.
func ClubDocumentFromEntity(c *entity.Club) *ClubDocument {
	memberIDs := c.MemberIDs
	if memberIDs == nil {
		memberIDs = []string{}
	}
	eventIDs := c.EventIDs
	if eventIDs == nil {
		eventIDs = []string{}
	}
	memberRoles := make(map[string]string, len(c.MemberRoles))
	for userID, role := range c.MemberRoles {
		memberRoles[userID] = role.String()
	}

	return &ClubDocument{
		Name:           c.Name,
		Description:    c.Description,
		Type:           c.Type,
		Tags:           c.Tags,
		Activities:     c.Activities,
		RequiredSkills: c.RequiredSkills,
		MeetingTime:    c.MeetingTime,
		LeaderID:       c.LeaderID,
		MemberIDs:      memberIDs,
		MemberRoles:    memberRoles,
		EventIDs:       eventIDs,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
