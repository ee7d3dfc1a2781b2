package middleware

import (
	"strings"

	"clubhub/internal/delivery/http/response"
	"clubhub/internal/domain/entity"
	"clubhub/internal/domain/repository"
	"clubhub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID    = "userID"
	contextKeyUserEmail = "userEmail"
)

// AuthMiddleware validates bearer tokens through the configured identity
// provider and resolves role requirements against the user store.
type AuthMiddleware struct {
	identity service.IdentityProvider
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identity service.IdentityProvider, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{identity: identity, userRepo: userRepo}
}

// Authenticate is the core middleware function that validates the bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		authUser, err := m.identity.VerifyToken(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		// Set user info on the context for handlers to use
		c.Set(contextKeyUserID, authUser.UID)
		c.Set(contextKeyUserEmail, authUser.Email)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the authenticated user's
// system-wide role against the user store.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := GetUserID(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: user information missing")
			}

			user, err := m.userRepo.FindByID(c.Request().Context(), userID)
			if err != nil {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: unknown user")
			}

			if user.Role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// RequireSelfOrRole lets a request through when the named path parameter is
// the authenticated user's own id, or when the user holds the given
// system-wide role. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireSelfOrRole(param string, role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := GetUserID(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: user information missing")
			}

			if c.Param(param) == userID {
				return next(c)
			}

			user, err := m.userRepo.FindByID(c.Request().Context(), userID)
			if err != nil {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: unknown user")
			}

			if user.Role != role {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: not the account owner")
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user id stored by Authenticate.
func GetUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(contextKeyUserID).(string)
	if !ok || userID == "" {
		return "", false
	}

	return userID, true
}
