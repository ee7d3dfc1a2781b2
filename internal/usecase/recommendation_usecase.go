package usecase

import (
	"context"

	"clubhub/internal/domain/entity"
)

// RecommendationUsecase defines the interface for the club recommendation
// quiz. Recommendations are advisory: failures degrade to an empty result
// rather than an error.
type RecommendationUsecase interface {
	RecommendClubs(ctx context.Context, input *QuizInput) (*QuizOutput, error)
}

// --- Input DTOs ---

// QuizAnswer is a single answered quiz question.
type QuizAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QuizInput carries the full set of quiz answers.
type QuizInput struct {
	Answers []QuizAnswer `json:"answers"`
}

// --- Output DTOs ---

// QuizOutput is the recommendation result. Clubs only contains clubs that
// exist in the store.
type QuizOutput struct {
	Clubs  []*entity.Club `json:"clubs"`
	Reason string         `json:"reason,omitempty"`
}
