package usecase

import (
	"context"

	"clubhub/internal/domain/entity"
)

// UserUsecase defines the interface for user-related business operations,
// including registration against the identity provider.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetAllUsers(ctx context.Context) ([]*entity.User, error)
	GetUser(ctx context.Context, userID string) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateUser(ctx context.Context, userID string, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, userID string) error
	JoinClub(ctx context.Context, userID, clubID string, role entity.ClubRole) error
	LeaveClub(ctx context.Context, userID, clubID string) error
}

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	DisplayName   string `json:"display_name"`
	Phone         string `json:"phone,omitempty"`
	BirthDate     string `json:"birth_date,omitempty"`
	Gender        string `json:"gender,omitempty"`
	University    string `json:"university,omitempty"`
	Faculty       string `json:"faculty,omitempty"`
	Department    string `json:"department,omitempty"`
	Grade         int    `json:"grade,omitempty"`
	StudentNumber string `json:"student_number,omitempty"`
	PhotoURL      string `json:"photo_url,omitempty"`
}

// LoginInput defines the credentials for a password sign-in.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserInput defines the data that may be changed on a user profile.
// Nil fields are left untouched.
type UpdateUserInput struct {
	DisplayName   *string `json:"display_name,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	BirthDate     *string `json:"birth_date,omitempty"`
	Gender        *string `json:"gender,omitempty"`
	University    *string `json:"university,omitempty"`
	Faculty       *string `json:"faculty,omitempty"`
	Department    *string `json:"department,omitempty"`
	Grade         *int    `json:"grade,omitempty"`
	StudentNumber *string `json:"student_number,omitempty"`
	PhotoURL      *string `json:"photo_url,omitempty"`
}

// --- Output DTOs ---

// RegisterOutput is the result of a successful registration.
type RegisterOutput struct {
	User *entity.User `json:"user"`
}

// LoginOutput carries the bearer token issued for a sign-in.
type LoginOutput struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}
