// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"clubhub/internal/delivery/http/middleware"
	"clubhub/internal/delivery/http/router/handler"
	"clubhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler           *handler.UserHandler
	ClubHandler           *handler.ClubHandler
	EventHandler          *handler.EventHandler
	InvitationHandler     *handler.InvitationHandler
	RecommendationHandler *handler.RecommendationHandler
	AuthMiddleware        *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler           *handler.UserHandler
	clubHandler           *handler.ClubHandler
	eventHandler          *handler.EventHandler
	invitationHandler     *handler.InvitationHandler
	recommendationHandler *handler.RecommendationHandler
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:           params.UserHandler,
		clubHandler:           params.ClubHandler,
		eventHandler:          params.EventHandler,
		invitationHandler:     params.InvitationHandler,
		recommendationHandler: params.RecommendationHandler,
		authMiddleware:        params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	requireAdmin := r.authMiddleware.RequireRole(entity.RoleAdmin)
	requireSelfOrAdmin := r.authMiddleware.RequireSelfOrRole("id", entity.RoleAdmin)

	// User routes that require authentication
	usersGroup := e.Group("/users")
	usersGroup.Use(r.authMiddleware.Authenticate)
	{
		usersGroup.GET("", r.userHandler.GetAllUsers)
		usersGroup.GET("/me", r.userHandler.GetProfile)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.PUT("/:id", r.userHandler.UpdateUser, requireSelfOrAdmin)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser, requireAdmin)

		// Membership mirror of the club member routes
		usersGroup.POST("/:id/clubs", r.userHandler.JoinClub, requireSelfOrAdmin)
		usersGroup.DELETE("/:id/clubs/:clubId", r.userHandler.LeaveClub, requireSelfOrAdmin)
	}

	// Club routes that require authentication; destructive operations require
	// the admin role
	clubsGroup := e.Group("/clubs")
	clubsGroup.Use(r.authMiddleware.Authenticate)
	{
		clubsGroup.GET("", r.clubHandler.GetAllClubs)
		clubsGroup.GET("/:id", r.clubHandler.GetClub)
		clubsGroup.POST("", r.clubHandler.CreateClub, requireAdmin)
		clubsGroup.PUT("/:id", r.clubHandler.UpdateClub, requireAdmin)
		clubsGroup.DELETE("/:id", r.clubHandler.DeleteClub, requireAdmin)

		clubsGroup.POST("/:id/members", r.clubHandler.AddMember)
		clubsGroup.DELETE("/:id/members/:userId", r.clubHandler.RemoveMember)
	}

	// Event routes that require authentication
	eventsGroup := e.Group("/events")
	eventsGroup.Use(r.authMiddleware.Authenticate)
	{
		eventsGroup.GET("", r.eventHandler.GetAllEvents)
		eventsGroup.GET("/:id", r.eventHandler.GetEvent)
		eventsGroup.POST("", r.eventHandler.CreateEvent)
		eventsGroup.PUT("/:id", r.eventHandler.UpdateEvent)
		eventsGroup.DELETE("/:id", r.eventHandler.DeleteEvent)

		eventsGroup.POST("/:id/attendees", r.eventHandler.RegisterAttendee)
		eventsGroup.PUT("/:id/attendees/:userId", r.eventHandler.UpdateAttendeeStatus)
		eventsGroup.DELETE("/:id/attendees/:userId", r.eventHandler.RemoveAttendee)
		eventsGroup.GET("/:id/checkin-qr", r.eventHandler.CheckInQRCode)
	}

	// Invitation and founding request routes; decisions require the admin role
	invitationsGroup := e.Group("/invitations")
	invitationsGroup.Use(r.authMiddleware.Authenticate)
	{
		invitationsGroup.GET("", r.invitationHandler.GetAllInvitations)
		invitationsGroup.GET("/:id", r.invitationHandler.GetInvitation)
		invitationsGroup.POST("", r.invitationHandler.CreateInvitation)
		invitationsGroup.PUT("/:id", r.invitationHandler.UpdateStatus, requireAdmin)
		invitationsGroup.POST("/:id/approve", r.invitationHandler.Approve, requireAdmin)
		invitationsGroup.POST("/:id/reject", r.invitationHandler.Reject, requireAdmin)
	}

	// Recommendation quiz
	recommendationsGroup := e.Group("/recommendations")
	recommendationsGroup.Use(r.authMiddleware.Authenticate)
	{
		recommendationsGroup.POST("/quiz", r.recommendationHandler.RecommendClubs)
	}
}
