package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"clubhub/config"
	deliverycontext "clubhub/internal/delivery/context"
	"clubhub/internal/domain/entity"
	domainerrors "clubhub/internal/domain/errors"
	"clubhub/internal/domain/repository"
	"clubhub/internal/domain/service"
	"clubhub/internal/usecase"
)

const defaultMaxTokens = 512

type recommendationService struct {
	clubRepo   repository.ClubRepository
	completion service.CompletionService
	config     *config.Config
	logger     *slog.Logger
}

// RecommendationServiceParams holds dependencies for RecommendationService, injected by Fx.
type RecommendationServiceParams struct {
	fx.In

	ClubRepo   repository.ClubRepository
	Completion service.CompletionService
	Config     *config.Config
	Logger     *slog.Logger
}

// NewRecommendationService creates a new recommendation service instance.
func NewRecommendationService(params RecommendationServiceParams) usecase.RecommendationUsecase {
	return &recommendationService{
		clubRepo:   params.ClubRepo,
		completion: params.Completion,
		config:     params.Config,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *recommendationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// completionResult is the JSON shape the completion endpoint is asked to emit.
type completionResult struct {
	Clubs  []string `json:"clubs"`
	Reason string   `json:"reason"`
}

// RecommendClubs asks the completion endpoint to pick clubs matching the quiz
// answers. Only clubs that actually exist are returned, and any transport or
// parse failure degrades to an empty recommendation rather than an error.
func (srv *recommendationService) RecommendClubs(ctx context.Context, input *usecase.QuizInput) (*usecase.QuizOutput, error) {
	if len(input.Answers) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quiz answers are required")
	}

	clubs, err := srv.clubRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all clubs")
	}
	if len(clubs) == 0 {
		return &usecase.QuizOutput{Clubs: []*entity.Club{}}, nil
	}

	maxTokens := defaultMaxTokens
	if srv.config.Recommendation != nil && srv.config.Recommendation.MaxTokens > 0 {
		maxTokens = srv.config.Recommendation.MaxTokens
	}

	raw, err := srv.completion.Complete(ctx, buildQuizPrompt(input.Answers, clubs), maxTokens)
	if err != nil {
		srv.log(ctx).Warn("Completion request failed, returning empty recommendation",
			slog.Any("error", err),
		)

		return &usecase.QuizOutput{Clubs: []*entity.Club{}}, nil
	}

	result, err := parseCompletionResult(raw)
	if err != nil {
		srv.log(ctx).Warn("Completion response unparseable, returning empty recommendation",
			slog.Any("error", err),
		)

		return &usecase.QuizOutput{Clubs: []*entity.Club{}}, nil
	}

	return &usecase.QuizOutput{
		Clubs:  matchClubsByName(result.Clubs, clubs),
		Reason: result.Reason,
	}, nil
}

// buildQuizPrompt composes the completion prompt from the quiz answers and the
// authoritative club list.
func buildQuizPrompt(answers []usecase.QuizAnswer, clubs []*entity.Club) string {
	var b strings.Builder
	b.WriteString("You are a university club advisor. A student answered the following quiz:\n\n")
	for _, a := range answers {
		fmt.Fprintf(&b, "Q: %s\nA: %s\n", a.Question, a.Answer)
	}

	b.WriteString("\nThese clubs exist:\n")
	for _, c := range clubs {
		fmt.Fprintf(&b, "- %s", c.Name)
		if c.Description != "" {
			fmt.Fprintf(&b, ": %s", c.Description)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nRecommend up to three clubs from the list above. ")
	b.WriteString(`Respond with a single JSON object of the form {"clubs": ["name", ...], "reason": "..."} and nothing else.`)

	return b.String()
}

// parseCompletionResult extracts and decodes the first well-formed JSON object
// from the completion text. Models often wrap the object in prose or code
// fences, so the payload is located by brace matching rather than decoded
// directly.
func parseCompletionResult(raw string) (*completionResult, error) {
	payload, err := extractJSONObject(raw)
	if err != nil {
		return nil, err
	}

	var result completionResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, errors.Wrap(err, "failed to decode completion payload")
	}

	return &result, nil
}

// extractJSONObject returns the first balanced top-level JSON object in the
// text. String literals are skipped so braces inside values do not confuse the
// scan.
func extractJSONObject(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", errors.New("no JSON object in completion text")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}

			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", errors.New("unbalanced JSON object in completion text")
}

// matchClubsByName resolves recommended names against existing clubs,
// case-insensitively and ignoring surrounding whitespace. Unknown names are
// dropped.
func matchClubsByName(names []string, clubs []*entity.Club) []*entity.Club {
	byName := make(map[string]*entity.Club, len(clubs))
	for _, c := range clubs {
		byName[strings.ToLower(strings.TrimSpace(c.Name))] = c
	}

	matched := make([]*entity.Club, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if club, ok := byName[key]; ok && !seen[key] {
			matched = append(matched, club)
			seen[key] = true
		}
	}

	return matched
}
