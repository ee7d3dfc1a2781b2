package handler

import (
	"log/slog"
	"net/http"

	"clubhub/internal/delivery/http/middleware"
	"clubhub/internal/delivery/http/response"
	"clubhub/internal/domain/entity"
	"clubhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InvitationHandlerParams holds dependencies for InvitationHandler, injected by Fx.
type InvitationHandlerParams struct {
	fx.In

	InvitationUC usecase.InvitationUsecase
	Logger       *slog.Logger
}

// InvitationHandler holds dependencies for invitation-related handlers
type InvitationHandler struct {
	invitationUC usecase.InvitationUsecase
	logger       *slog.Logger
}

// NewInvitationHandler is the constructor for InvitationHandler
func NewInvitationHandler(params InvitationHandlerParams) *InvitationHandler {
	return &InvitationHandler{
		invitationUC: params.InvitationUC,
		logger:       params.Logger,
	}
}

// CreateInvitationRequest represents the request body for creating an
// invitation or a club founding request
type CreateInvitationRequest struct {
	ClubName   string `json:"club_name" validate:"required"`
	ClubID     string `json:"club_id"`
	ReceiverID string `json:"receiver_id"`
}

// UpdateInvitationStatusRequest represents the request body for moving an
// invitation to a terminal status
type UpdateInvitationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved accepted rejected"`
}

// GetAllInvitations handles listing every invitation and founding request
func (h *InvitationHandler) GetAllInvitations(c echo.Context) error {
	ctx := c.Request().Context()

	if senderID := c.QueryParam("sender_id"); senderID != "" {
		invitations, err := h.invitationUC.GetInvitationsBySender(ctx, senderID)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, invitations)
	}

	invitations, err := h.invitationUC.GetAllInvitations(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invitations)
}

// GetInvitation handles retrieving a single invitation
func (h *InvitationHandler) GetInvitation(c echo.Context) error {
	invitation, err := h.invitationUC.GetInvitation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invitation)
}

// CreateInvitation handles creating an invitation or founding request. The
// sender is always the authenticated user.
func (h *InvitationHandler) CreateInvitation(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateInvitationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invitation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	invitation, err := h.invitationUC.CreateInvitation(c.Request().Context(), &usecase.CreateInvitationInput{
		ClubName:   req.ClubName,
		ClubID:     req.ClubID,
		SenderID:   userID,
		ReceiverID: req.ReceiverID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, invitation)
}

// UpdateStatus handles moving an invitation to a terminal status
func (h *InvitationHandler) UpdateStatus(c echo.Context) error {
	var req UpdateInvitationStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	err := h.invitationUC.UpdateStatus(c.Request().Context(), c.Param("id"), entity.InvitationStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Invitation updated successfully"})
}

// Approve handles approving a club founding request
func (h *InvitationHandler) Approve(c echo.Context) error {
	club, err := h.invitationUC.Approve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, club)
}

// Reject handles rejecting an invitation or founding request
func (h *InvitationHandler) Reject(c echo.Context) error {
	if err := h.invitationUC.Reject(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Invitation rejected"})
}
