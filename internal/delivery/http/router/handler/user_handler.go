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

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user and auth related handlers
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for account registration
type RegisterRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required"`
	DisplayName   string `json:"display_name" validate:"required"`
	Phone         string `json:"phone"`
	BirthDate     string `json:"birth_date"`
	Gender        string `json:"gender"`
	University    string `json:"university"`
	Faculty       string `json:"faculty"`
	Department    string `json:"department"`
	Grade         int    `json:"grade" validate:"omitempty,min=1"`
	StudentNumber string `json:"student_number"`
	PhotoURL      string `json:"photo_url" validate:"omitempty,url"`
}

// LoginRequest represents the request body for a password sign-in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest represents the request body for profile updates
type UpdateUserRequest struct {
	DisplayName   *string `json:"display_name" validate:"omitempty,min=1"`
	Phone         *string `json:"phone"`
	BirthDate     *string `json:"birth_date"`
	Gender        *string `json:"gender"`
	University    *string `json:"university"`
	Faculty       *string `json:"faculty"`
	Department    *string `json:"department"`
	Grade         *int    `json:"grade" validate:"omitempty,min=1"`
	StudentNumber *string `json:"student_number"`
	PhotoURL      *string `json:"photo_url" validate:"omitempty,url"`
}

// MembershipRequest represents the request body for joining a club
type MembershipRequest struct {
	ClubID string `json:"club_id" validate:"required"`
	Role   string `json:"role" validate:"omitempty,oneof=admin member"`
}

// Register handles account registration
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:         req.Email,
		Password:      req.Password,
		DisplayName:   req.DisplayName,
		Phone:         req.Phone,
		BirthDate:     req.BirthDate,
		Gender:        req.Gender,
		University:    req.University,
		Faculty:       req.Faculty,
		Department:    req.Department,
		Grade:         req.Grade,
		StudentNumber: req.StudentNumber,
		PhotoURL:      req.PhotoURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// Login handles password sign-in
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// GetAllUsers handles listing every user
func (h *UserHandler) GetAllUsers(c echo.Context) error {
	users, err := h.userUC.GetAllUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

// GetUser handles retrieving a single user
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userUC.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// GetProfile handles retrieving the authenticated user's own document
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.userUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateUser handles profile updates
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), c.Param("id"), &usecase.UpdateUserInput{
		DisplayName:   req.DisplayName,
		Phone:         req.Phone,
		BirthDate:     req.BirthDate,
		Gender:        req.Gender,
		University:    req.University,
		Faculty:       req.Faculty,
		Department:    req.Department,
		Grade:         req.Grade,
		StudentNumber: req.StudentNumber,
		PhotoURL:      req.PhotoURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// DeleteUser handles account deletion
func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.userUC.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

// JoinClub handles adding the user to a club
func (h *UserHandler) JoinClub(c echo.Context) error {
	var req MembershipRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid membership input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.userUC.JoinClub(c.Request().Context(), c.Param("id"), req.ClubID, entity.ClubRole(req.Role)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Joined club successfully"})
}

// LeaveClub handles removing the user from a club
func (h *UserHandler) LeaveClub(c echo.Context) error {
	if err := h.userUC.LeaveClub(c.Request().Context(), c.Param("id"), c.Param("clubId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Left club successfully"})
}
