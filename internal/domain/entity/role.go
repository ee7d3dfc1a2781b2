// Package entity contains the core business objects of the project.
package entity

// Role represents the system-wide role of a user account.
type Role string

const (
	// RoleAdmin indicates a dashboard administrator.
	RoleAdmin Role = "admin"
	// RoleUser indicates a regular portal user.
	RoleUser Role = "user"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}

// ClubRole represents the role a user holds inside a single club.
type ClubRole string

const (
	// ClubRoleAdmin indicates a club administrator.
	ClubRoleAdmin ClubRole = "admin"
	// ClubRoleMember indicates a plain club member.
	ClubRoleMember ClubRole = "member"
)

// String returns the string representation of the ClubRole.
func (r ClubRole) String() string {
	return string(r)
}

// IsValid checks if the ClubRole is a valid value.
func (r ClubRole) IsValid() bool {
	switch r {
	case ClubRoleAdmin, ClubRoleMember:
		return true
	default:
		return false
	}
}
