// Package model contains the document structures persisted in Firestore and
// their conversions to and from domain entities.
package model

import (
	"time"

	"clubhub/internal/domain/entity"
)

// UserDocument is the Firestore representation of a user.
type UserDocument struct {
	DisplayName   string            `firestore:"displayName"`
	Email         string            `firestore:"email"`
	Phone         string            `firestore:"phone,omitempty"`
	BirthDate     string            `firestore:"birthDate,omitempty"`
	Gender        string            `firestore:"gender,omitempty"`
	University    string            `firestore:"university,omitempty"`
	Faculty       string            `firestore:"faculty,omitempty"`
	Department    string            `firestore:"department,omitempty"`
	Grade         int               `firestore:"grade,omitempty"`
	StudentNumber string            `firestore:"studentNumber,omitempty"`
	PhotoURL      string            `firestore:"photoUrl,omitempty"`
	Role          string            `firestore:"role"`
	ClubIDs       []string          `firestore:"clubIds"`
	ClubRoles     map[string]string `firestore:"clubRoles"`
	CreatedAt     time.Time         `firestore:"createdAt"`
	UpdatedAt     time.Time         `firestore:"updatedAt"`
}

// ToEntity converts the document to a domain entity under the given store id.
func (d *UserDocument) ToEntity(id string) *entity.User {
	clubRoles := make(map[string]entity.ClubRole, len(d.ClubRoles))
	for clubID, role := range d.ClubRoles {
		clubRoles[clubID] = entity.ClubRole(role)
	}

	return &entity.User{
		ID:            id,
		DisplayName:   d.DisplayName,
		Email:         d.Email,
		Phone:         d.Phone,
		BirthDate:     d.BirthDate,
		Gender:        d.Gender,
		University:    d.University,
		Faculty:       d.Faculty,
		Department:    d.Department,
		Grade:         d.Grade,
		StudentNumber: d.StudentNumber,
		PhotoURL:      d.PhotoURL,
		Role:          entity.Role(d.Role),
		ClubIDs:       d.ClubIDs,
		ClubRoles:     clubRoles,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// UserDocumentFromEntity converts a domain entity to its document form.
// Relationship fields are never persisted as nil so that list/map reads stay
// uniform across documents.
func UserDocumentFromEntity(u *entity.User) *UserDocument {
	clubIDs := u.ClubIDs
	if clubIDs == nil {
		clubIDs = []string{}
	}
	clubRoles := make(map[string]string, len(u.ClubRoles))
	for clubID, role := range u.ClubRoles {
		clubRoles[clubID] = role.String()
	}

	return &UserDocument{
		DisplayName:   u.DisplayName,
		Email:         u.Email,
		Phone:         u.Phone,
		BirthDate:     u.BirthDate,
		Gender:        u.Gender,
		University:    u.University,
		Faculty:       u.Faculty,
		Department:    u.Department,
		Grade:         u.Grade,
		StudentNumber: u.StudentNumber,
		PhotoURL:      u.PhotoURL,
		Role:          u.Role.String(),
		ClubIDs:       clubIDs,
		ClubRoles:     clubRoles,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
