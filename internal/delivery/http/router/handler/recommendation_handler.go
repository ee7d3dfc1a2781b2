package handler

import (
	"log/slog"
	"net/http"

	"clubhub/internal/delivery/http/response"
	"clubhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RecommendationHandlerParams holds dependencies for RecommendationHandler, injected by Fx.
type RecommendationHandlerParams struct {
	fx.In

	RecommendationUC usecase.RecommendationUsecase
	Logger           *slog.Logger
}

// RecommendationHandler holds dependencies for the recommendation quiz handler
type RecommendationHandler struct {
	recommendationUC usecase.RecommendationUsecase
	logger           *slog.Logger
}

// NewRecommendationHandler is the constructor for RecommendationHandler
func NewRecommendationHandler(params RecommendationHandlerParams) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationUC: params.RecommendationUC,
		logger:           params.Logger,
	}
}

// QuizAnswerRequest is a single answered quiz question
type QuizAnswerRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// QuizRequest represents the request body for the recommendation quiz
type QuizRequest struct {
	Answers []QuizAnswerRequest `json:"answers" validate:"required,min=1,dive"`
}

// RecommendClubs handles the recommendation quiz
func (h *RecommendationHandler) RecommendClubs(c echo.Context) error {
	var req QuizRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quiz input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	answers := make([]usecase.QuizAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, usecase.QuizAnswer{Question: a.Question, Answer: a.Answer})
	}

	output, err := h.recommendationUC.RecommendClubs(c.Request().Context(), &usecase.QuizInput{Answers: answers})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}
