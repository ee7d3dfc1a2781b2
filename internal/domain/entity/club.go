package entity

import (
	"slices"
	"time"
)

// Club represents a student club with its denormalized membership lists.
// MemberIDs and MemberRoles are always mutated together so that every member id
// has a role entry and vice versa; the matching User documents carry the mirror
// of this relationship in ClubIDs/ClubRoles.
type Club struct {
	ID             string              // Opaque store-assigned id.
	Name           string              // Club display name.
	Description    string              // Free-form description.
	Type           string              // Optional taxonomy: sports, culture, academic, ...
	Tags           []string            // Optional search tags.
	Activities     []string            // Optional list of typical activities.
	RequiredSkills []string            // Optional list of skills expected of members.
	MeetingTime    string              // Optional free-form meeting schedule.
	LeaderID       string              // Id of the club leader; backfilled from the admin list.
	MemberIDs      []string            // Ordered list of member user ids.
	MemberRoles    map[string]ClubRole // User id -> role. Key set mirrors MemberIDs.
	EventIDs       []string            // Ids of events owned by this club.
	CreatedAt      time.Time           // Timestamp of club creation.
	UpdatedAt      time.Time           // Timestamp of the last modification.
}

// HasMember reports whether the given user is a member of the club.
func (c *Club) HasMember(userID string) bool {
	return slices.Contains(c.MemberIDs, userID)
}

// AddMember records the given user as a member with the given role.
// Adding an existing member only updates the role.
func (c *Club) AddMember(userID string, role ClubRole) {
	if c.MemberRoles == nil {
		c.MemberRoles = make(map[string]ClubRole)
	}
	if !slices.Contains(c.MemberIDs, userID) {
		c.MemberIDs = append(c.MemberIDs, userID)
	}
	c.MemberRoles[userID] = role
}

// RemoveMember removes the given user from the member list. Removing a user who
// is not a member is a no-op.
func (c *Club) RemoveMember(userID string) {
	c.MemberIDs = slices.DeleteFunc(c.MemberIDs, func(id string) bool { return id == userID })
	delete(c.MemberRoles, userID)
	if c.LeaderID == userID {
		c.LeaderID = ""
	}
}

// AddEvent links an event id to the club. Linking an already linked event is a
// no-op.
func (c *Club) AddEvent(eventID string) {
	if !slices.Contains(c.EventIDs, eventID) {
		c.EventIDs = append(c.EventIDs, eventID)
	}
}

// RemoveEvent unlinks an event id from the club.
func (c *Club) RemoveEvent(eventID string) {
	c.EventIDs = slices.DeleteFunc(c.EventIDs, func(id string) bool { return id == eventID })
}

// AdminIDs returns the ids of members holding the club admin role, in member
// list order.
func (c *Club) AdminIDs() []string {
	var admins []string
	for _, id := range c.MemberIDs {
		if c.MemberRoles[id] == ClubRoleAdmin {
			admins = append(admins, id)
		}
	}

	return admins
}
