// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"clubhub/internal/domain/entity"
)

// ClubUsecase defines the interface for club-related business operations.
type ClubUsecase interface {
	GetAllClubs(ctx context.Context) ([]*entity.Club, error)
	GetClub(ctx context.Context, clubID string) (*entity.Club, error)
	CreateClub(ctx context.Context, input *CreateClubInput) (*entity.Club, error)
	UpdateClub(ctx context.Context, clubID string, input *UpdateClubInput) (*entity.Club, error)
	DeleteClub(ctx context.Context, clubID string) error
	AddMember(ctx context.Context, clubID string, input *AddMemberInput) error
	RemoveMember(ctx context.Context, clubID, userID string) error
}

// --- Input DTOs ---

// CreateClubInput defines the data required to create a club.
type CreateClubInput struct {
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	Type           string   `json:"type,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Activities     []string `json:"activities,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
	MeetingTime    string   `json:"meeting_time,omitempty"`
	LeaderID       string   `json:"leader_id,omitempty"`
}

// UpdateClubInput defines the data that may be changed on a club. Nil fields
// are left untouched.
type UpdateClubInput struct {
	Name           *string   `json:"name,omitempty"`
	Description    *string   `json:"description,omitempty"`
	Type           *string   `json:"type,omitempty"`
	Tags           *[]string `json:"tags,omitempty"`
	Activities     *[]string `json:"activities,omitempty"`
	RequiredSkills *[]string `json:"required_skills,omitempty"`
	MeetingTime    *string   `json:"meeting_time,omitempty"`
	LeaderID       *string   `json:"leader_id,omitempty"`
}

// AddMemberInput defines the data required to add a member to a club.
type AddMemberInput struct {
	UserID string          `json:"user_id"`
	Role   entity.ClubRole `json:"role"`
}
