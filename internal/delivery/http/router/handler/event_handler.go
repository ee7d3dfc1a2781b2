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

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	EventUC usecase.EventUsecase
	Logger  *slog.Logger
}

// EventHandler holds dependencies for event-related handlers
type EventHandler struct {
	eventUC usecase.EventUsecase
	logger  *slog.Logger
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		eventUC: params.EventUC,
		logger:  params.Logger,
	}
}

// CreateEventRequest represents the request body for creating an event
type CreateEventRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	ClubID      string `json:"club_id" validate:"required"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity" validate:"omitempty,min=1"`
}

// UpdateEventRequest represents the request body for updating an event
type UpdateEventRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Location    *string `json:"location"`
	Capacity    *int    `json:"capacity" validate:"omitempty,min=1"`
}

// AttendeeStatusRequest represents the request body for changing a
// registration status
type AttendeeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=registered attended cancelled"`
}

// GetAllEvents handles listing events, optionally filtered by owning club
func (h *EventHandler) GetAllEvents(c echo.Context) error {
	ctx := c.Request().Context()

	if clubID := c.QueryParam("club_id"); clubID != "" {
		events, err := h.eventUC.GetEventsByClub(ctx, clubID)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, events)
	}

	events, err := h.eventUC.GetAllEvents(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, events)
}

// GetEvent handles retrieving a single event
func (h *EventHandler) GetEvent(c echo.Context) error {
	event, err := h.eventUC.GetEvent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, event)
}

// CreateEvent handles event creation
func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	event, err := h.eventUC.CreateEvent(c.Request().Context(), &usecase.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		ClubID:      req.ClubID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Location:    req.Location,
		Capacity:    req.Capacity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, event)
}

// UpdateEvent handles event updates
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	var req UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	event, err := h.eventUC.UpdateEvent(c.Request().Context(), c.Param("id"), &usecase.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Location:    req.Location,
		Capacity:    req.Capacity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, event)
}

// DeleteEvent handles event deletion
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	if err := h.eventUC.DeleteEvent(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Event deleted successfully"})
}

// RegisterAttendee handles the authenticated user registering for an event
func (h *EventHandler) RegisterAttendee(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.eventUC.RegisterAttendee(c.Request().Context(), c.Param("id"), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Registered successfully"})
}

// UpdateAttendeeStatus handles changing a registration status
func (h *EventHandler) UpdateAttendeeStatus(c echo.Context) error {
	var req AttendeeStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	err := h.eventUC.UpdateAttendeeStatus(c.Request().Context(), c.Param("id"), c.Param("userId"), entity.AttendeeStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Status updated successfully"})
}

// RemoveAttendee handles removing a registration
func (h *EventHandler) RemoveAttendee(c echo.Context) error {
	if err := h.eventUC.RemoveAttendee(c.Request().Context(), c.Param("id"), c.Param("userId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Attendee removed successfully"})
}

// CheckInQRCode renders the check-in QR code PNG for an event
func (h *EventHandler) CheckInQRCode(c echo.Context) error {
	png, err := h.eventUC.CheckInQRCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Blob(c, http.StatusOK, "image/png", png)
}
