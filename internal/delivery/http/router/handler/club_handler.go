package handler

import (
	"log/slog"
	"net/http"

	"clubhub/internal/delivery/http/response"
	"clubhub/internal/domain/entity"
	"clubhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ClubHandlerParams holds dependencies for ClubHandler, injected by Fx.
type ClubHandlerParams struct {
	fx.In

	ClubUC usecase.ClubUsecase
	Logger *slog.Logger
}

// ClubHandler holds dependencies for club-related handlers
type ClubHandler struct {
	clubUC usecase.ClubUsecase
	logger *slog.Logger
}

// NewClubHandler is the constructor for ClubHandler
func NewClubHandler(params ClubHandlerParams) *ClubHandler {
	return &ClubHandler{
		clubUC: params.ClubUC,
		logger: params.Logger,
	}
}

// CreateClubRequest represents the request body for creating a club
type CreateClubRequest struct {
	Name           string   `json:"name" validate:"required"`
	Description    string   `json:"description"`
	Type           string   `json:"type"`
	Tags           []string `json:"tags"`
	Activities     []string `json:"activities"`
	RequiredSkills []string `json:"required_skills"`
	MeetingTime    string   `json:"meeting_time"`
	LeaderID       string   `json:"leader_id"`
}

// UpdateClubRequest represents the request body for updating a club
type UpdateClubRequest struct {
	Name           *string   `json:"name" validate:"omitempty,min=1"`
	Description    *string   `json:"description"`
	Type           *string   `json:"type"`
	Tags           *[]string `json:"tags"`
	Activities     *[]string `json:"activities"`
	RequiredSkills *[]string `json:"required_skills"`
	MeetingTime    *string   `json:"meeting_time"`
	LeaderID       *string   `json:"leader_id"`
}

// AddMemberRequest represents the request body for adding a club member
type AddMemberRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Role   string `json:"role" validate:"omitempty,oneof=admin member"`
}

// GetAllClubs handles listing every club
func (h *ClubHandler) GetAllClubs(c echo.Context) error {
	clubs, err := h.clubUC.GetAllClubs(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, clubs)
}

// GetClub handles retrieving a single club
func (h *ClubHandler) GetClub(c echo.Context) error {
	club, err := h.clubUC.GetClub(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, club)
}

// CreateClub handles club creation
func (h *ClubHandler) CreateClub(c echo.Context) error {
	var req CreateClubRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid club input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	club, err := h.clubUC.CreateClub(c.Request().Context(), &usecase.CreateClubInput{
		Name:           req.Name,
		Description:    req.Description,
		Type:           req.Type,
		Tags:           req.Tags,
		Activities:     req.Activities,
		RequiredSkills: req.RequiredSkills,
		MeetingTime:    req.MeetingTime,
		LeaderID:       req.LeaderID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, club)
}

// UpdateClub handles club updates
func (h *ClubHandler) UpdateClub(c echo.Context) error {
	var req UpdateClubRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid club input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	club, err := h.clubUC.UpdateClub(c.Request().Context(), c.Param("id"), &usecase.UpdateClubInput{
		Name:           req.Name,
		Description:    req.Description,
		Type:           req.Type,
		Tags:           req.Tags,
		Activities:     req.Activities,
		RequiredSkills: req.RequiredSkills,
		MeetingTime:    req.MeetingTime,
		LeaderID:       req.LeaderID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, club)
}

// DeleteClub handles club deletion with its membership and event cascade
func (h *ClubHandler) DeleteClub(c echo.Context) error {
	if err := h.clubUC.DeleteClub(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Club deleted successfully"})
}

// AddMember handles adding a member to a club
func (h *ClubHandler) AddMember(c echo.Context) error {
	var req AddMemberRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid member input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	err := h.clubUC.AddMember(c.Request().Context(), c.Param("id"), &usecase.AddMemberInput{
		UserID: req.UserID,
		Role:   entity.ClubRole(req.Role),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Member added successfully"})
}

// RemoveMember handles removing a member from a club
func (h *ClubHandler) RemoveMember(c echo.Context) error {
	if err := h.clubUC.RemoveMember(c.Request().Context(), c.Param("id"), c.Param("userId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Member removed successfully"})
}
