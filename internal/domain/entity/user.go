package entity

import (
	"slices"
	"time"
)

// User is the core entity of the system, representing a student or staff account.
// The ID is the opaque document id assigned by the store; for accounts registered
// through the identity provider it equals the provider-issued uid.
type User struct {
	ID            string              // Opaque store-assigned id (identity uid for registered accounts).
	DisplayName   string              // The user's display name.
	Email         string              // Primary contact email, also the login identifier.
	Phone         string              // Optional phone number.
	BirthDate     string              // Birth date in ISO-8601 date form.
	Gender        string              // Optional free-form gender.
	University    string              // University the user belongs to.
	Faculty       string              // Faculty within the university.
	Department    string              // Department within the faculty.
	Grade         int                 // School year, 1-based.
	StudentNumber string              // Student number issued by the university.
	PhotoURL      string              // Profile photo URL; synthesized when absent.
	Role          Role                // System-wide role (admin or user).
	ClubIDs       []string            // Ids of clubs the user belongs to.
	ClubRoles     map[string]ClubRole // Club id -> role held in that club. Key set mirrors ClubIDs.
	CreatedAt     time.Time           // Timestamp of account creation.
	UpdatedAt     time.Time           // Timestamp of the last modification.
}

// IsMemberOf reports whether the user belongs to the given club.
func (u *User) IsMemberOf(clubID string) bool {
	return slices.Contains(u.ClubIDs, clubID)
}

// JoinClub records membership of the given club with the given role.
// ClubIDs and ClubRoles are kept in sync; joining a club the user already
// belongs to only updates the role.
func (u *User) JoinClub(clubID string, role ClubRole) {
	if u.ClubRoles == nil {
		u.ClubRoles = make(map[string]ClubRole)
	}
	if !slices.Contains(u.ClubIDs, clubID) {
		u.ClubIDs = append(u.ClubIDs, clubID)
	}
	u.ClubRoles[clubID] = role
}

// LeaveClub removes membership of the given club. Leaving a club the user does
// not belong to is a no-op.
func (u *User) LeaveClub(clubID string) {
	u.ClubIDs = slices.DeleteFunc(u.ClubIDs, func(id string) bool { return id == clubID })
	delete(u.ClubRoles, clubID)
}
